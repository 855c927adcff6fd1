package repository

import (
	"context"

	"upath/internal/database"
	"upath/internal/domain/user"
)

type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	GetByID(ctx context.Context, userID string) (user.User, error)
	// SetGoal points the user at goalID and creates the matching progress
	// row if it does not exist yet. Both happen in one transaction.
	SetGoal(ctx context.Context, userID string, goalID int) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `u.id, u.user_first, u.user_last, u.user_region, u.goal_id, u.user_img_src, g.title`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.First, &u.Last, &u.Region, &u.GoalID, &u.ImgSrc, &u.GoalTitle)
	return u, err
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 LEFT JOIN goals g ON g.goal_id = u.goal_id
		 ORDER BY u.user_last, u.user_first`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, userID string) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users u
		 LEFT JOIN goals g ON g.goal_id = u.goal_id
		 WHERE u.id = $1`,
		userID,
	))
	if err != nil {
		if database.IsNoRows(err) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) SetGoal(ctx context.Context, userID string, goalID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx, `UPDATE users SET goal_id = $2 WHERE id = $1`, userID, goalID)
	if err != nil {
		if _, ok := database.ForeignKeyViolation(err); ok {
			return ErrGoalNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if _, err := tx.Exec(ctx, insertProgressSQL, userID, goalID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
