package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/services"
	"github.com/labtrail/labtrail/pkg/session"
)

type createSessionRequest struct {
	SelectedPatientID *uuid.UUID `json:"selected_patient_id"`
	// WithOnboarding asks for an insight over the patient's recent reports
	// to seed the first turn. Requires a selected patient.
	WithOnboarding bool `json:"with_onboarding"`
}

// createSession verifies patient ownership (foreign patients read as "not
// found" to prevent enumeration) and optionally builds the onboarding
// context before the session is created.
func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := currentUser(c)
	var onboarding *models.OnboardingContext

	if req.SelectedPatientID != nil {
		pat, err := s.deps.Patients.Get(c.Request.Context(), u.ID, *req.SelectedPatientID, false)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		if req.WithOnboarding {
			ob, err := s.deps.Insights.Generate(c.Request.Context(), u.ID, pat)
			if err != nil {
				// Onboarding is best-effort; the session is still usable.
				slog.Warn("Onboarding context failed", "patient_id", pat.ID, "error", err)
			} else {
				onboarding = ob
			}
		}
	} else if req.WithOnboarding {
		c.JSON(http.StatusBadRequest, gin.H{"error": "with_onboarding requires selected_patient_id"})
		return
	}

	sess := s.deps.Sessions.Create(u.ID, req.SelectedPatientID, onboarding)
	c.JSON(http.StatusCreated, gin.H{
		"session_id":          sess.ID,
		"selected_patient_id": sess.SelectedPatientID,
		"expires_at":          sess.ExpiresAt,
	})
}

// validateSession is the cheap existence + ownership check; Peek does not
// extend the TTL.
func (s *Server) validateSession(c *gin.Context) {
	sess, ok := s.ownedSession(c, s.deps.Sessions.Peek)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":          sess.ID,
		"selected_patient_id": sess.SelectedPatientID,
		"processing":          sess.Processing,
		"expires_at":          sess.ExpiresAt,
	})
}

// streamSession attaches an SSE sink. A second stream on the same session
// replaces the first.
func (s *Server) streamSession(c *gin.Context) {
	sess, ok := s.ownedSession(c, s.deps.Sessions.Get)
	if !ok {
		return
	}

	sink, err := newSSESink(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	s.deps.Registry.Attach(sess.ID, sink)
	s.deps.Registry.Emit(sess.ID, events.NewEvent(events.EventSessionStart, map[string]any{
		"sessionId":         sess.ID.String(),
		"selectedPatientId": uuidOrNil(sess.SelectedPatientID),
	}))

	select {
	case <-c.Request.Context().Done():
		// Disconnect does not abort an in-flight turn; its events are
		// dropped at the registry.
		if err := s.deps.Sessions.MarkDisconnected(sess.ID); err == nil {
			s.deps.Registry.Detach(sess.ID)
		}
	case <-sink.Done():
	}
}

type postMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// postMessage acquires the turn lock, acknowledges with 202, and runs the
// turn asynchronously. Contention answers 409 SESSION_BUSY.
func (s *Server) postMessage(c *gin.Context) {
	sess, ok := s.ownedSession(c, s.deps.Sessions.Get)
	if !ok {
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !s.deps.Sessions.TryAcquireLock(sess.ID) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "a message is already being processed",
			"code":  events.CodeSessionBusy,
		})
		return
	}

	go s.deps.Orchestrator.ProcessTurn(sess.ID, req.Content)
	c.JSON(http.StatusAccepted, gin.H{"session_id": sess.ID})
}

// deleteSession tears down session and stream. Idempotent.
func (s *Server) deleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if sess, err := s.deps.Sessions.Peek(id); err == nil {
		if sess.UserID != currentUser(c).ID {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		s.deps.Registry.Close(id, "session deleted")
		s.deps.Sessions.Delete(id)
	}
	c.Status(http.StatusNoContent)
}

// ownedSession parses the :id param, fetches via the given accessor, and
// enforces ownership. Foreign and missing sessions are indistinguishable.
func (s *Server) ownedSession(c *gin.Context, fetch func(uuid.UUID) (*session.Session, error)) (*session.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}

	sess, err := fetch(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	if sess.UserID != currentUser(c).ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
