package dto

type MenteeRequest struct {
	MenteeID string `json:"mentee_id"`
}

type SetGoalRequest struct {
	GoalID *int `json:"goal_id"`
}

type EnsureProgressRequest struct {
	GoalID *int `json:"goal_id"`
}

type UpdateMilestoneRequest struct {
	Milestone1IsComplete *bool `json:"milestone1_is_complete"`
	Milestone2IsComplete *bool `json:"milestone2_is_complete"`
	MilestoneNIsComplete *bool `json:"milestone_n_is_complete"`
}

type PreferencesRequest struct {
	Interests     *string   `json:"interests" validate:"omitempty,max=2000"`
	SelectedPaths *[]string `json:"selected_paths" validate:"omitempty,dive,max=100"`
}

type AddBookmarkRequest struct {
	ResourceID *int `json:"resource_id" validate:"required"`
}
