// Package ingest turns uploaded lab-report artifacts into persisted,
// normalized records: admission, page preparation, vision OCR, schema
// validation, sanitization, checksum dedup, transactional persist, and the
// mapping trigger.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/jobs"
	"github.com/labtrail/labtrail/pkg/services"
	"github.com/labtrail/labtrail/pkg/vision"
)

// allowedMimes is the upload admission allow-list.
var allowedMimes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/gif":       true,
}

// ocrMaxTokens bounds the extraction response. Reports with hundreds of
// parameters fit comfortably.
const ocrMaxTokens = 8192

// Mapper triggers analyte mapping for a freshly persisted report.
type Mapper interface {
	MapReportAsync(reportID uuid.UUID)
}

// Config carries the pipeline's admission bounds.
type Config struct {
	MaxUploadBytes int64
	MaxPDFPages    int
}

// Pipeline runs one ingestion job end to end.
type Pipeline struct {
	provider vision.Provider
	reports  *services.ReportService
	store    *Store
	jobs     *jobs.Manager
	mapper   Mapper
	cfg      Config
}

// NewPipeline wires the stages. mapper may be nil to disable the trigger
// (tests exercise mapping separately).
func NewPipeline(provider vision.Provider, reports *services.ReportService, store *Store, manager *jobs.Manager, mapper Mapper, cfg Config) *Pipeline {
	if provider == nil {
		panic("NewPipeline: provider must not be nil")
	}
	if reports == nil {
		panic("NewPipeline: reports must not be nil")
	}
	if store == nil {
		panic("NewPipeline: store must not be nil")
	}
	if manager == nil {
		panic("NewPipeline: manager must not be nil")
	}
	return &Pipeline{
		provider: provider,
		reports:  reports,
		store:    store,
		jobs:     manager,
		mapper:   mapper,
		cfg:      cfg,
	}
}

// Input is one upload.
type Input struct {
	Bytes    []byte
	Mime     string
	Filename string
	UserID   uuid.UUID
}

// Admit validates the upload before a job is created, so obviously bad
// input fails the request rather than a background job. It returns the PDF
// page count (zero for images).
func (p *Pipeline) Admit(input *Input) (int, error) {
	if len(input.Bytes) == 0 {
		return 0, services.NewValidationError("file", "empty upload")
	}
	if int64(len(input.Bytes)) > p.cfg.MaxUploadBytes {
		return 0, services.NewValidationError("file",
			fmt.Sprintf("upload is %d bytes, limit %d", len(input.Bytes), p.cfg.MaxUploadBytes))
	}
	if !allowedMimes[input.Mime] {
		return 0, services.NewValidationError("mime_type",
			fmt.Sprintf("unsupported type %q", input.Mime))
	}

	if input.Mime != "application/pdf" {
		return 0, nil
	}
	pages, err := PDFPageCount(input.Bytes)
	if err != nil {
		return 0, services.NewValidationError("file", err.Error())
	}
	if pages == 0 {
		return 0, services.NewValidationError("file", "PDF has no pages")
	}
	if pages > p.cfg.MaxPDFPages {
		return 0, services.NewValidationError("file",
			fmt.Sprintf("PDF has %d pages, limit %d", pages, p.cfg.MaxPDFPages))
	}
	return pages, nil
}

// Run executes the job. Every failure marks the job failed; a report row
// exists only when the persist transaction committed.
func (p *Pipeline) Run(ctx context.Context, input *Input, jobID uuid.UUID) {
	logger := slog.With("job_id", jobID, "filename", input.Filename, "user_id", input.UserID)

	if !p.jobs.Start(jobID) {
		logger.Warn("Job no longer pending, skipping")
		return
	}

	report, err := p.run(ctx, input, jobID, logger)
	if err != nil {
		logger.Error("Ingestion failed", "error", err)
		p.jobs.Fail(jobID, err.Error())
		return
	}

	p.jobs.Complete(jobID, map[string]any{
		"report_id":  report.ID.String(),
		"patient_id": report.PatientID.String(),
	})
}

func (p *Pipeline) run(ctx context.Context, input *Input, jobID uuid.UUID, logger *slog.Logger) (*ent.Report, error) {
	p.jobs.SetProgress(jobID, 5, "validating upload")
	if _, err := p.Admit(input); err != nil {
		return nil, err
	}

	// Scoped working directory, released on every exit path.
	workDir, err := os.MkdirTemp("", "ingest-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)
	if err := os.WriteFile(filepath.Join(workDir, "original"), input.Bytes, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	p.jobs.SetProgress(jobID, 15, "preparing pages")
	req, err := p.buildRequest(input)
	if err != nil {
		return nil, err
	}
	req.OnProgress = func(percent int, message string) {
		p.jobs.SetProgress(jobID, percent, message)
	}

	raw, err := p.provider.Analyze(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision extraction failed: %w", err)
	}
	modelName := p.provider.Model()

	p.jobs.SetProgress(jobID, 60, "validating extraction")
	if err := ValidateExtraction(raw); err != nil {
		return nil, err
	}
	extraction, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}

	checksum := Checksum(input.Bytes)
	existing, err := p.reports.FindDuplicate(ctx, input.UserID, extraction.PatientName, checksum)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Info("Duplicate upload, returning existing report", "report_id", existing.ID)
		return existing, nil
	}

	p.jobs.SetProgress(jobID, 75, "saving report")
	storagePath, err := p.store.Put(input.Bytes, checksum)
	if err != nil {
		return nil, err
	}

	var rawOutput map[string]any
	if err := json.Unmarshal(raw, &rawOutput); err != nil {
		logger.Warn("Could not keep raw model output", "error", err)
	}

	report, duplicate, err := p.reports.PersistExtraction(ctx, services.PersistExtractionInput{
		UserID:        input.UserID,
		Filename:      input.Filename,
		MimeType:      input.Mime,
		StoragePath:   storagePath,
		Checksum:      checksum,
		ModelName:     modelName,
		Extraction:    extraction,
		RawOutput:     rawOutput,
		EffectiveDate: ParseReportDate(extraction.TestDate),
		RecognizedAt:  time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if duplicate {
		logger.Info("Duplicate upload detected at persist, returning existing report", "report_id", report.ID)
		return report, nil
	}

	p.jobs.SetProgress(jobID, 90, "mapping parameters")
	if p.mapper != nil {
		p.mapper.MapReportAsync(report.ID)
	}

	logger.Info("Report ingested",
		"report_id", report.ID,
		"patient_id", report.PatientID,
		"results", len(extraction.Results),
		"model", modelName,
	)
	return report, nil
}

// buildRequest prepares provider input: PDFs ship natively when the provider
// takes them, otherwise recovered page images; plain images are scaled and
// re-encoded.
func (p *Pipeline) buildRequest(input *Input) (*vision.Request, error) {
	schema, err := ExtractionSchema()
	if err != nil {
		return nil, err
	}
	req := &vision.Request{
		SystemPrompt: extractionSystemPrompt,
		UserPrompt:   extractionUserPrompt,
		SchemaName:   extractionSchemaName,
		Schema:       schema,
		MaxTokens:    ocrMaxTokens,
	}

	if input.Mime != "application/pdf" {
		img, err := PrepareImage(input.Bytes)
		if err != nil {
			return nil, services.NewValidationError("file", err.Error())
		}
		req.Images = []vision.Image{img}
		return req, nil
	}

	if p.provider.SupportsPDF() {
		req.PDF = input.Bytes
	}
	// Recovered page images let an image-only secondary take over when the
	// PDF-native provider fails.
	images, err := ExtractPDFImages(input.Bytes, p.cfg.MaxPDFPages)
	if err == nil {
		req.Images = images
	}
	if len(req.PDF) == 0 && len(req.Images) == 0 {
		return nil, services.NewValidationError("file",
			"no renderable pages recovered and no PDF-capable provider configured")
	}
	return req, nil
}
