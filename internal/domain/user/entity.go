package user

import "time"

// User ids are opaque tokens supplied by the client.
type User struct {
	ID        string
	First     string
	Last      string
	Region    *string
	GoalID    *int
	GoalTitle *string
	ImgSrc    *string
}

// Progress is the completion state of one user's milestones for one goal.
// At most one row exists per (UserID, GoalID).
type Progress struct {
	ID                   int64
	UserID               string
	GoalID               int
	Milestone1IsComplete bool
	Milestone2IsComplete bool
	MilestoneNIsComplete bool
	UpdatedAt            time.Time

	// Populated by list queries that join goals.
	GoalTitle  string
	Milestone1 string
	Milestone2 string
	MilestoneN *string
}

// MilestonePatch carries the flags to change. Nil fields are left untouched.
type MilestonePatch struct {
	Milestone1IsComplete *bool
	Milestone2IsComplete *bool
	MilestoneNIsComplete *bool
}

func (p MilestonePatch) Empty() bool {
	return p.Milestone1IsComplete == nil && p.Milestone2IsComplete == nil && p.MilestoneNIsComplete == nil
}

type Preferences struct {
	UserID        string
	Interests     *string
	SelectedPaths []string
	UpdatedAt     *time.Time
}

// PreferencesPatch is merged into the stored record. A nil field keeps the
// stored value.
type PreferencesPatch struct {
	Interests     *string
	SelectedPaths []string
	PathsSet      bool
}
