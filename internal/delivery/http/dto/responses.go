package dto

import (
	"time"

	"upath/internal/domain/goal"
	"upath/internal/domain/mentor"
	"upath/internal/domain/resource"
	"upath/internal/domain/user"
)

type GoalResponse struct {
	GoalID     int     `json:"goal_id"`
	Title      string  `json:"title"`
	Milestone1 string  `json:"milestone1"`
	Milestone2 string  `json:"milestone2"`
	MilestoneN *string `json:"milestone_n"`
	Image1Src  *string `json:"image1_src"`
	ImageNSrc  *string `json:"image_n_src"`
}

func NewGoalResponse(g goal.Goal) GoalResponse {
	return GoalResponse{
		GoalID:     g.ID,
		Title:      g.Title,
		Milestone1: g.Milestone1,
		Milestone2: g.Milestone2,
		MilestoneN: g.MilestoneN,
		Image1Src:  g.Image1Src,
		ImageNSrc:  g.ImageNSrc,
	}
}

type UserResponse struct {
	ID         string  `json:"id"`
	UserFirst  string  `json:"user_first"`
	UserLast   string  `json:"user_last"`
	UserRegion *string `json:"user_region"`
	GoalID     *int    `json:"goal_id"`
	UserImgSrc *string `json:"user_img_src"`
	GoalTitle  *string `json:"goal_title"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		UserFirst:  u.First,
		UserLast:   u.Last,
		UserRegion: u.Region,
		GoalID:     u.GoalID,
		UserImgSrc: u.ImgSrc,
		GoalTitle:  u.GoalTitle,
	}
}

type SetGoalResponse struct {
	ID     string `json:"id"`
	GoalID int    `json:"goal_id"`
}

type ProgressResponse struct {
	ID                   int64     `json:"id"`
	UserID               string    `json:"user_id"`
	GoalID               int       `json:"goal_id"`
	Milestone1IsComplete bool      `json:"milestone1_is_complete"`
	Milestone2IsComplete bool      `json:"milestone2_is_complete"`
	MilestoneNIsComplete bool      `json:"milestone_n_is_complete"`
	UpdatedAt            time.Time `json:"updated_at"`

	GoalTitle  string  `json:"goal_title,omitempty"`
	Milestone1 string  `json:"milestone1,omitempty"`
	Milestone2 string  `json:"milestone2,omitempty"`
	MilestoneN *string `json:"milestone_n,omitempty"`
}

func NewProgressResponse(p user.Progress) ProgressResponse {
	return ProgressResponse{
		ID:                   p.ID,
		UserID:               p.UserID,
		GoalID:               p.GoalID,
		Milestone1IsComplete: p.Milestone1IsComplete,
		Milestone2IsComplete: p.Milestone2IsComplete,
		MilestoneNIsComplete: p.MilestoneNIsComplete,
		UpdatedAt:            p.UpdatedAt,
		GoalTitle:            p.GoalTitle,
		Milestone1:           p.Milestone1,
		Milestone2:           p.Milestone2,
		MilestoneN:           p.MilestoneN,
	}
}

type MentorResponse struct {
	MentorID     int     `json:"mentor_id"`
	MentorFirst  string  `json:"mentor_first"`
	MentorLast   string  `json:"mentor_last"`
	MentorRegion *string `json:"mentor_region"`
	MentorImgSrc *string `json:"mentor_img_src"`
	Specialty    string  `json:"specialty"`
	Description  string  `json:"description"`
	IsAvailable  bool    `json:"is_available"`
}

func NewMentorResponse(m mentor.Mentor) MentorResponse {
	return MentorResponse{
		MentorID:     m.ID,
		MentorFirst:  m.First,
		MentorLast:   m.Last,
		MentorRegion: m.Region,
		MentorImgSrc: m.ImgSrc,
		Specialty:    m.Specialty,
		Description:  m.Description,
		IsAvailable:  m.IsAvailable,
	}
}

type MeetingResponse struct {
	MeetingID     int64     `json:"meeting_id"`
	MentorID      int       `json:"mentor_id"`
	MenteeID      string    `json:"mentee_id"`
	Time          time.Time `json:"time"`
	MeetingStatus string    `json:"meetingstatus"`
	MentorFirst   string    `json:"mentor_first"`
	MentorLast    string    `json:"mentor_last"`
	Specialty     string    `json:"specialty"`
}

func NewMeetingResponse(m mentor.Meeting) MeetingResponse {
	return MeetingResponse{
		MeetingID:     m.ID,
		MentorID:      m.MentorID,
		MenteeID:      m.MenteeID,
		Time:          m.Time,
		MeetingStatus: m.Status,
		MentorFirst:   m.MentorFirst,
		MentorLast:    m.MentorLast,
		Specialty:     m.Specialty,
	}
}

type PreferencesResponse struct {
	UserID        string     `json:"user_id"`
	Interests     *string    `json:"interests"`
	SelectedPaths []string   `json:"selected_paths"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func NewPreferencesResponse(p user.Preferences) PreferencesResponse {
	paths := p.SelectedPaths
	if paths == nil {
		paths = []string{}
	}
	return PreferencesResponse{
		UserID:        p.UserID,
		Interests:     p.Interests,
		SelectedPaths: paths,
		UpdatedAt:     p.UpdatedAt,
	}
}

type ResourceResponse struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

func NewResourceResponse(r resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Link:        r.Link,
	}
}

type BookmarkResponse struct {
	UserID     string           `json:"user_id"`
	ResourceID int              `json:"resource_id"`
	CreatedAt  time.Time        `json:"created_at"`
	Resource   ResourceResponse `json:"resource"`
}

func NewBookmarkResponse(b resource.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		UserID:     b.UserID,
		ResourceID: b.ResourceID,
		CreatedAt:  b.CreatedAt,
		Resource:   NewResourceResponse(b.Resource),
	}
}

type HealthResponse struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	DBTime  time.Time `json:"dbTime"`
	Cache   string    `json:"cache"`
}

// MapSlice converts a list with fn, always returning a non-nil slice so
// empty lists encode as [] rather than null.
func MapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
