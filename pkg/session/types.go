package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/pkg/models"
)

// Session is one conversational context. All mutation happens through Store
// methods under its lock; Sessions handed out by the store are snapshots.
type Session struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// SelectedPatientID scopes every SQL the session dispatches.
	SelectedPatientID *uuid.UUID

	// Onboarding is consumed by the first turn and then cleared.
	Onboarding *models.OnboardingContext

	// SystemPrompt and Initialized are set once, on the first turn.
	SystemPrompt string
	Initialized  bool

	Messages []models.ConversationMessage

	// CurrentMessageID frames the in-flight turn; empty between turns.
	CurrentMessageID string

	// LastResult caches the latest read-only query for display-tool fallback.
	LastResult *models.QueryResult

	// Processing is the per-session turn lock.
	Processing bool

	Disconnected bool

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Clone returns a snapshot safe to read outside the store lock. Message
// contents are shared and treated as immutable.
func (s *Session) Clone() *Session {
	dup := *s
	dup.Messages = make([]models.ConversationMessage, len(s.Messages))
	copy(dup.Messages, s.Messages)
	if s.SelectedPatientID != nil {
		id := *s.SelectedPatientID
		dup.SelectedPatientID = &id
	}
	return &dup
}
