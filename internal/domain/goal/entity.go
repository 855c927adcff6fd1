package goal

// Goal is immutable reference data: a career goal with up to three
// milestone descriptions.
type Goal struct {
	ID         int
	Title      string
	Milestone1 string
	Milestone2 string
	MilestoneN *string
	Image1Src  *string
	ImageNSrc  *string
}
