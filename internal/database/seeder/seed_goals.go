package seeder

import (
	"context"

	"upath/internal/database"
)

type GoalsSeeder struct{}

func (GoalsSeeder) Name() string { return "goals" }

type goalSeed struct {
	Title      string
	Milestone1 string
	Milestone2 string
	MilestoneN string
}

var goalSeeds = []goalSeed{
	{"Software Development", "Complete an intro programming course", "Build and publish a portfolio project", "Land a software internship"},
	{"Computer Engineering", "Learn circuit and electronics basics", "Build a microcontroller project", "Apply to engineering programs"},
	{"Product Management", "Shadow a product team for a week", "Write a product spec for an app idea", "Land a product internship"},
	{"Healthcare", "Earn CPR and first aid certification", "Volunteer at a local clinic", "Apply to a nursing or pre-med program"},
	{"Business & Entrepreneurship", "Write a one-page business plan", "Make your first sale", "Register your small business"},
	{"Education", "Tutor a younger student", "Assist in a classroom for a semester", "Apply to a teaching program"},
	{"Creative Arts & Design", "Finish a design fundamentals course", "Assemble a creative portfolio", "Exhibit or publish your work"},
	{"Trades & Technical Skills", "Research apprenticeship programs", "Complete a pre-apprenticeship course", "Start a registered apprenticeship"},
}

func (GoalsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "goals", "goal_id", "title", "milestone1", "milestone2", "milestone_n"); err != nil {
		return 0, err
	}

	return inTx(ctx, db, func(tx database.Tx) (int64, error) {
		var total int64
		for _, g := range goalSeeds {
			n, err := tx.Exec(
				ctx,
				`INSERT INTO goals (title, milestone1, milestone2, milestone_n) VALUES ($1, $2, $3, $4) ON CONFLICT (title) DO NOTHING`,
				g.Title,
				g.Milestone1,
				g.Milestone2,
				g.MilestoneN,
			)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})
}
