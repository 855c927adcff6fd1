package ws

import (
	"encoding/json"
	"time"
)

const EventMentorAvailability = "mentor_availability"

type MentorAvailabilityEvent struct {
	Type        string `json:"type"`
	MentorID    int    `json:"mentor_id"`
	IsAvailable bool   `json:"is_available"`
	Timestamp   string `json:"timestamp"`
}

// MentorAvailabilityChanged broadcasts a committed booking change.
func (h *Hub) MentorAvailabilityChanged(mentorID int, available bool) {
	if h == nil {
		return
	}
	b, err := json.Marshal(MentorAvailabilityEvent{
		Type:        EventMentorAvailability,
		MentorID:    mentorID,
		IsAvailable: available,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.log.Error("encode availability event failed", "error", err)
		return
	}
	h.Broadcast(b)
}
