package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/normalize"
)

// persistTimeout bounds the single-transaction persist step, which bulk
// inserts all extracted rows.
const persistTimeout = 30 * time.Second

// ReportService manages report records and the transactional persist step of
// the ingestion pipeline.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	if client == nil {
		panic("NewReportService: client must not be nil")
	}
	return &ReportService{client: client}
}

// PersistExtractionInput carries everything the persist step writes. The
// extraction has already been sanitized; dates are parsed by the caller.
type PersistExtractionInput struct {
	UserID        uuid.UUID
	Filename      string
	MimeType      string
	StoragePath   string
	Checksum      string
	ModelName     string
	Extraction    *models.Extraction
	RawOutput     map[string]any
	EffectiveDate *time.Time // nil when the test date was absent or ambiguous
	RecognizedAt  time.Time
}

// PersistExtraction writes the patient, report, and all lab-result rows in
// one transaction. Returns (report, duplicate, error): when a report with the
// same (patient, checksum) already exists, the existing report is returned
// with duplicate=true and nothing is written.
func (s *ReportService) PersistExtraction(jobCtx context.Context, input PersistExtractionInput) (*ent.Report, bool, error) {
	if input.Extraction == nil {
		return nil, false, NewValidationError("extraction", "required")
	}
	if input.Checksum == "" {
		return nil, false, NewValidationError("checksum", "required")
	}
	if input.Extraction.PatientName == "" {
		return nil, false, NewValidationError("patient_name", "extraction carries no patient name")
	}

	ctx, cancel := context.WithTimeout(jobCtx, persistTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pat, err := getOrCreatePatientTx(ctx, tx, input.UserID, input.Extraction.PatientName)
	if err != nil {
		return nil, false, err
	}

	// Re-check dedup inside the transaction; the unique (patient, checksum)
	// index makes this race-safe against concurrent ingestions.
	existing, err := tx.Report.Query().
		Where(report.PatientIDEQ(pat.ID), report.ChecksumEQ(input.Checksum)).
		Only(ctx)
	if err == nil {
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to check for duplicate report: %w", err)
	}

	builder := tx.Report.Create().
		SetUserID(input.UserID).
		SetPatientID(pat.ID).
		SetFilename(input.Filename).
		SetMimeType(input.MimeType).
		SetStoragePath(input.StoragePath).
		SetChecksum(input.Checksum).
		SetStatus(report.StatusProcessing).
		SetPatientNameSnapshot(input.Extraction.PatientName).
		SetModelName(input.ModelName).
		SetRecognizedAt(input.RecognizedAt).
		SetTestDateText(input.Extraction.TestDate).
		SetLabName(input.Extraction.LabName)
	if input.RawOutput != nil {
		builder.SetRawOutput(input.RawOutput)
	}
	if input.EffectiveDate != nil {
		builder.SetEffectiveDate(*input.EffectiveDate)
	}

	rep, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to a concurrent ingestion of the same bytes.
			_ = tx.Rollback()
			return s.findExisting(ctx, pat.ID, input.Checksum)
		}
		return nil, false, fmt.Errorf("failed to create report: %w", err)
	}

	if len(input.Extraction.Results) > 0 {
		builders := make([]*ent.LabResultCreate, 0, len(input.Extraction.Results))
		for _, row := range input.Extraction.Results {
			rb := tx.LabResult.Create().
				SetReportID(rep.ID).
				SetUserID(input.UserID).
				SetPatientID(pat.ID).
				SetParameterName(row.ParameterName).
				SetOutOfRange(labresult.OutOfRange(row.OutOfRange)).
				SetNillableValueNumeric(row.ValueNumeric).
				SetNillableValueText(row.ValueText).
				SetNillableUnit(row.Unit).
				SetNillableReferenceLow(row.ReferenceLow).
				SetNillableReferenceHigh(row.ReferenceHigh).
				SetNillableReferenceText(row.ReferenceText)
			builders = append(builders, rb)
		}
		if err := tx.LabResult.CreateBulk(builders...).Exec(ctx); err != nil {
			return nil, false, fmt.Errorf("failed to create lab results: %w", err)
		}
	}

	rep, err = rep.Update().SetStatus(report.StatusCompleted).Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to complete report: %w", err)
	}

	if err := tx.Patient.UpdateOneID(pat.ID).SetLastReportAt(time.Now()).Exec(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to touch patient: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit report: %w", err)
	}
	return rep, false, nil
}

// findExisting resolves the surviving report after a dedup constraint race.
func (s *ReportService) findExisting(ctx context.Context, patientID uuid.UUID, checksum string) (*ent.Report, bool, error) {
	existing, err := s.client.Report.Query().
		Where(report.PatientIDEQ(patientID), report.ChecksumEQ(checksum)).
		Only(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve duplicate report: %w", err)
	}
	return existing, true, nil
}

// FindDuplicate returns the existing report for (owner, patient name,
// checksum), or nil when none exists. Read-only; used by the pipeline's
// dedup stage before any row is written.
func (s *ReportService) FindDuplicate(jobCtx context.Context, userID uuid.UUID, patientName, checksum string) (*ent.Report, error) {
	ctx, cancel := context.WithTimeout(jobCtx, serviceTimeout)
	defer cancel()

	normalized := normalize.Key(patientName)
	pat, err := s.client.Patient.Query().
		Where(patient.UserIDEQ(userID), patient.NormalizedNameEQ(normalized)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // new patient, cannot be a duplicate
		}
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}

	existing, err := s.client.Report.Query().
		Where(report.PatientIDEQ(pat.ID), report.ChecksumEQ(checksum)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query report by checksum: %w", err)
	}
	return existing, nil
}

// Get fetches a report with its results. Ownership is enforced unless
// adminMode is set.
func (s *ReportService) Get(httpCtx context.Context, userID, reportID uuid.UUID, adminMode bool) (*ent.Report, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	query := s.client.Report.Query().
		Where(report.IDEQ(reportID)).
		WithResults(func(q *ent.LabResultQuery) {
			q.Order(ent.Asc(labresult.FieldParameterName))
		})
	if !adminMode {
		query = query.Where(report.UserIDEQ(userID))
	}

	rep, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return rep, nil
}

// ListByPatient returns the patient's reports, newest first.
func (s *ReportService) ListByPatient(httpCtx context.Context, userID, patientID uuid.UUID, adminMode bool) ([]*ent.Report, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	query := s.client.Report.Query().
		Where(report.PatientIDEQ(patientID)).
		Order(ent.Desc(report.FieldCreatedAt))
	if !adminMode {
		query = query.Where(report.UserIDEQ(userID))
	}

	reports, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// RecentByPatient returns up to limit completed reports with results loaded,
// newest first. Feeds the onboarding insight.
func (s *ReportService) RecentByPatient(httpCtx context.Context, userID, patientID uuid.UUID, limit int) ([]*ent.Report, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	reports, err := s.client.Report.Query().
		Where(
			report.PatientIDEQ(patientID),
			report.UserIDEQ(userID),
			report.StatusEQ(report.StatusCompleted),
		).
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		WithResults().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent reports: %w", err)
	}
	return reports, nil
}
