package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/exam-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAdminLoggedIn       EventType = "admin_logged_in"
	EventStudentLoggedIn     EventType = "student_logged_in"
	EventLoggedOut           EventType = "logged_out"
	EventCredentialsRejected EventType = "credentials_rejected"
)

// Event represents a session lifecycle change.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Role      domain.Role `json:"role,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, role domain.Role, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Role:      role,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LoginPayload describes who logged in. It never carries the token.
type LoginPayload struct {
	Identity string `json:"identity"`
	Name     string `json:"name,omitempty"`
}

// LogoutPayload lists the roles whose credentials were cleared.
type LogoutPayload struct {
	Cleared []domain.Role `json:"cleared"`
}

// RejectedPayload describes a backend authentication rejection.
type RejectedPayload struct {
	RedirectTo string `json:"redirect_to"`
}
