package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labtrail/labtrail/pkg/ingest"
	"github.com/labtrail/labtrail/pkg/jobs"
)

// uploadReport accepts a multipart lab-report file, admits it, and schedules
// ingestion on the worker pool. Responds 202 with the job id to poll.
func (s *Server) uploadReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}
	defer f.Close()

	// One byte over the cap distinguishes "too large" from "at the limit".
	data, err := io.ReadAll(io.LimitReader(f, s.deps.Config.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	input := &ingest.Input{
		Bytes:    data,
		Mime:     fileHeader.Header.Get("Content-Type"),
		Filename: fileHeader.Filename,
		UserID:   currentUser(c).ID,
	}
	if _, err := s.deps.Pipeline.Admit(input); err != nil {
		mapServiceError(c, err)
		return
	}

	job := s.deps.Jobs.Create(input.UserID)
	accepted := s.deps.Pool.Submit(jobs.Task{
		JobID: job.ID,
		Run: func(ctx context.Context) {
			s.deps.Pipeline.Run(ctx, input, job.ID)
		},
	})
	if !accepted {
		s.deps.Jobs.Fail(job.ID, "ingestion queue is full")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many uploads in flight, try again shortly"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"job_id": job.ID})
}

// getJob implements the polling contract: 404 for unknown or TTL-expired
// jobs, and never another user's job.
func (s *Server) getJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job := s.deps.Jobs.Get(id)
	if job == nil || job.UserID != currentUser(c).ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}
