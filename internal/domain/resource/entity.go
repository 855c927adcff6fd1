package resource

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryScholarships = "Scholarships"
	CategoryJobs         = "Jobs"
	CategoryCollege      = "College"
)

var Categories = []string{CategoryScholarships, CategoryJobs, CategoryCollege}

// NormalizeCategory maps any casing of a known category to its canonical
// form. The second return is false for unknown categories.
func NormalizeCategory(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(c, raw) {
			return c, true
		}
	}
	return "", false
}

type Resource struct {
	ID          int
	Title       string
	Description string
	Category    string
	Link        string
	CreatedAt   time.Time
}

type Bookmark struct {
	UserID     string
	ResourceID int
	CreatedAt  time.Time
	Resource   Resource
}

const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

type ImportRun struct {
	ID         uuid.UUID
	Source     string
	Status     string
	Imported   int
	StartedAt  time.Time
	FinishedAt *time.Time
}
