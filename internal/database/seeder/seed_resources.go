package seeder

import (
	"context"

	"upath/internal/database"
)

type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "resources" }

var resourceSeeds = []struct {
	Title, Description, Category, Link string
}{
	{"Gates Millennium Scholarship", "Full scholarship for outstanding minority students with financial need.", "Scholarships", "https://www.gmsp.org"},
	{"Google Summer Internship", "Paid summer internship for students interested in technology.", "Jobs", "https://buildyourfuture.withgoogle.com/programs"},
	{"QuestBridge National College Match", "Connects high-achieving, low-income students with top colleges.", "College", "https://www.questbridge.org"},
	{"Year Up Program", "One-year career development program with internship placement.", "Jobs", "https://www.yearup.org"},
	{"Dell Scholars Program", "Scholarship plus support services for students who are Pell-eligible.", "Scholarships", "https://www.dellscholars.org"},
	{"Common App Fee Waivers", "Apply to college for free if you meet income eligibility.", "College", "https://www.commonapp.org/apply/fee-waiver"},
	{"Microsoft TEALS Program", "Volunteer-led CS education in underserved high schools.", "Jobs", "https://www.microsoft.com/teals"},
	{"Jack Kent Cooke Foundation", "Generous scholarships for high-achieving students with financial need.", "Scholarships", "https://www.jkcf.org"},
}

func (ResourcesSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := EnsureTableColumns(ctx, db, "resources", "id", "title", "description", "category", "link"); err != nil {
		return 0, err
	}

	return inTx(ctx, db, func(tx database.Tx) (int64, error) {
		var total int64
		for _, r := range resourceSeeds {
			n, err := tx.Exec(
				ctx,
				`INSERT INTO resources (title, description, category, link) VALUES ($1, $2, $3, $4) ON CONFLICT (link) DO NOTHING`,
				r.Title,
				r.Description,
				r.Category,
				r.Link,
			)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	})
}
