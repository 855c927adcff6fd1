package seeder

import (
	"context"

	"upath/internal/database"
)

type MentorsSeeder struct{}

func (MentorsSeeder) Name() string { return "mentors" }

var mentorSeeds = []struct {
	First, Last, Region, Specialty, Description string
}{
	{"Sarah", "Johnson", "Seattle, WA", "Software Engineering", "Senior engineer at a tech company. Passionate about helping underrepresented youth break into tech."},
	{"Marcus", "Williams", "Atlanta, GA", "Product Management", "PM lead who grew up in foster care. Knows firsthand the power of mentorship."},
	{"Priya", "Patel", "Chicago, IL", "Healthcare", "Nurse practitioner and first-gen college grad. Loves guiding students through college apps."},
	{"David", "Chen", "San Jose, CA", "Computer Engineering", "Hardware engineer who volunteers with coding bootcamps for youth."},
	{"Aaliyah", "Brooks", "Houston, TX", "Business & Entrepreneurship", "Small business owner who mentors young entrepreneurs in her community."},
}

func (MentorsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "mentors", "mentor_id", "mentor_first", "mentor_last", "specialty", "description"); err != nil {
		return 0, err
	}

	return inTx(ctx, db, func(tx database.Tx) (int64, error) {
		var total int64
		for _, m := range mentorSeeds {
			n, err := tx.Exec(
				ctx,
				`INSERT INTO mentors (mentor_first, mentor_last, mentor_region, specialty, description)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (mentor_first, mentor_last) DO NOTHING`,
				m.First,
				m.Last,
				m.Region,
				m.Specialty,
				m.Description,
			)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})
}
