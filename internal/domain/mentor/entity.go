package mentor

import "time"

const StatusScheduled = "scheduled"

type Mentor struct {
	ID          int
	First       string
	Last        string
	Region      *string
	ImgSrc      *string
	Specialty   string
	Description string
	IsAvailable bool
}

type Meeting struct {
	ID          int64
	MentorID    int
	MenteeID    string
	Time        time.Time
	Status      string
	CreatedAt   time.Time
	MentorFirst string
	MentorLast  string
	Specialty   string
}
