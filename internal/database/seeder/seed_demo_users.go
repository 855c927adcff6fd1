package seeder

import (
	"context"

	"upath/internal/database"
)

const (
	DemoUserA = "11111111-1111-1111-1111-111111111111"
	DemoUserB = "22222222-2222-2222-2222-222222222222"
)

// DemoUsersSeeder creates the two demo identities the client switches
// between, each with a goal and an empty progress row.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

var demoUserSeeds = []struct {
	ID, First, Last, Region, GoalTitle string
}{
	{DemoUserA, "Jordan", "Rivera", "Oakland, CA", "Software Development"},
	{DemoUserB, "Taylor", "Nguyen", "Detroit, MI", "Healthcare"},
}

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "users", "id", "user_first", "user_last", "user_region", "goal_id"); err != nil {
		return 0, err
	}

	return inTx(ctx, db, func(tx database.Tx) (int64, error) {
		var total int64
		for _, u := range demoUserSeeds {
			n, err := tx.Exec(
				ctx,
				`INSERT INTO users (id, user_first, user_last, user_region, goal_id)
				 VALUES ($1, $2, $3, $4, (SELECT goal_id FROM goals WHERE title = $5))
				 ON CONFLICT (id) DO NOTHING`,
				u.ID,
				u.First,
				u.Last,
				u.Region,
				u.GoalTitle,
			)
			if err != nil {
				return 0, err
			}
			total += n

			if _, err := tx.Exec(
				ctx,
				`INSERT INTO progressstatus (user_id, goal_id)
				 SELECT u.id, u.goal_id FROM users u WHERE u.id = $1 AND u.goal_id IS NOT NULL
				 ON CONFLICT (user_id, goal_id) DO NOTHING`,
				u.ID,
			); err != nil {
				return 0, err
			}
		}
		return total, nil
	})
}
