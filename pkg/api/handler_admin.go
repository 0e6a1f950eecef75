package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labtrail/labtrail/pkg/mapping"
	"github.com/labtrail/labtrail/pkg/services"
)

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.deps.Reviews.ListPendingReviews(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, r := range reviews {
		candidates, err := mapping.DecodeCandidates(r.Candidates)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		out = append(out, gin.H{
			"id":             r.ID,
			"parameter_name": r.ParameterName,
			"candidates":     candidates,
			"status":         r.Status,
			"created_at":     r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

type resolveReviewRequest struct {
	AnalyteID   uuid.UUID `json:"analyte_id" binding:"required"`
	CreateAlias bool      `json:"create_alias"`
}

func (s *Server) resolveReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}
	var req resolveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := s.deps.Reviews.ResolveReview(c.Request.Context(), services.ResolveReviewInput{
		ReviewID:    reviewID,
		AnalyteID:   req.AnalyteID,
		CreateAlias: req.CreateAlias,
		Actor:       currentUser(c),
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": review.ID, "status": review.Status})
}

func (s *Server) skipReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}
	if err := s.deps.Reviews.SkipReview(c.Request.Context(), reviewID, currentUser(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listPendingAnalytes(c *gin.Context) {
	pending, err := s.deps.Reviews.ListPendingAnalytes(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(pending))
	for _, p := range pending {
		out = append(out, gin.H{
			"id":            p.ID,
			"proposed_code": p.ProposedCode,
			"proposed_name": p.ProposedName,
			"variations":    p.Variations,
			"evidence":      p.Evidence,
			"created_at":    p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"pending_analytes": out})
}

type approvePendingRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s *Server) approvePendingAnalyte(c *gin.Context) {
	pendingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pending analyte id"})
		return
	}
	var req approvePendingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := s.deps.Reviews.ApprovePendingAnalyte(c.Request.Context(), services.ApprovePendingAnalyteInput{
		PendingID: pendingID,
		Code:      req.Code,
		Name:      req.Name,
		Actor:     currentUser(c),
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analyte": gin.H{
			"id":   outcome.Analyte.ID,
			"code": outcome.Analyte.Code,
			"name": outcome.Analyte.Name,
		},
		"backfill": gin.H{
			"results_bound":    outcome.Backfill.BoundResults,
			"reviews_resolved": outcome.Backfill.ResolvedReviews,
		},
	})
}

func (s *Server) discardPendingAnalyte(c *gin.Context) {
	pendingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pending analyte id"})
		return
	}
	if err := s.deps.Reviews.DiscardPendingAnalyte(c.Request.Context(), pendingID, currentUser(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listAnalytes(c *gin.Context) {
	analytes, err := s.deps.Analytes.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(analytes))
	for _, a := range analytes {
		out = append(out, gin.H{
			"id":   a.ID,
			"code": a.Code,
			"name": a.Name,
		})
	}
	c.JSON(http.StatusOK, gin.H{"analytes": out})
}

// listUnmappedParameters shows a user's parameters with no analyte binding.
// Admin debugging surface.
func (s *Server) listUnmappedParameters(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	params, err := s.deps.Analytes.ListUnmappedParameters(c.Request.Context(), userID, true)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unmapped": params})
}

func (s *Server) listAdminActions(c *gin.Context) {
	actions, err := s.deps.Audit.List(c.Request.Context(), 200)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(actions))
	for _, a := range actions {
		out = append(out, gin.H{
			"id":          a.ID,
			"actor_email": a.ActorEmail,
			"action":      a.Action,
			"target":      a.Target,
			"detail":      a.Detail,
			"created_at":  a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"actions": out})
}

// resetStore wipes all user data. The session store and registry are
// drained too so no chat keeps running against vanished rows.
func (s *Server) resetStore(c *gin.Context) {
	if err := s.deps.Reviews.ResetStore(c.Request.Context(), currentUser(c)); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
