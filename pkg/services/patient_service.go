package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/pkg/normalize"
)

// PatientService manages patient records. Patients are created by ingestion
// when a new (owner, normalized name) tuple appears; other components only
// read them.
type PatientService struct {
	client *ent.Client
}

// NewPatientService creates a new PatientService.
func NewPatientService(client *ent.Client) *PatientService {
	if client == nil {
		panic("NewPatientService: client must not be nil")
	}
	return &PatientService{client: client}
}

// Get fetches a patient owned by userID. Other users' patients return
// ErrNotFound rather than a permission error to prevent enumeration.
// adminMode bypasses the ownership filter.
func (s *PatientService) Get(httpCtx context.Context, userID, patientID uuid.UUID, adminMode bool) (*ent.Patient, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	query := s.client.Patient.Query().Where(patient.IDEQ(patientID))
	if !adminMode {
		query = query.Where(patient.UserIDEQ(userID))
	}

	p, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return p, nil
}

// List returns the user's patients ordered by most recent report first.
func (s *PatientService) List(httpCtx context.Context, userID uuid.UUID) ([]*ent.Patient, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	patients, err := s.client.Patient.Query().
		Where(patient.UserIDEQ(userID)).
		Order(ent.Desc(patient.FieldLastReportAt), ent.Asc(patient.FieldFullName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// Count returns how many patients the user owns. Chat recounts this on every
// message rather than caching it on the session.
func (s *PatientService) Count(httpCtx context.Context, userID uuid.UUID) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	n, err := s.client.Patient.Query().
		Where(patient.UserIDEQ(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return n, nil
}

// Exists reports whether the patient still exists and belongs to userID.
func (s *PatientService) Exists(httpCtx context.Context, userID, patientID uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	ok, err := s.client.Patient.Query().
		Where(patient.IDEQ(patientID), patient.UserIDEQ(userID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check patient: %w", err)
	}
	return ok, nil
}

// getOrCreatePatientTx upserts a patient by (owner, normalized name) inside
// an existing transaction. Used by the ingestion persist step.
func getOrCreatePatientTx(ctx context.Context, tx *ent.Tx, userID uuid.UUID, fullName string) (*ent.Patient, error) {
	normalized := normalize.Key(fullName)
	if normalized == "" {
		return nil, NewValidationError("patient_name", "empty after normalization")
	}

	existing, err := tx.Patient.Query().
		Where(patient.UserIDEQ(userID), patient.NormalizedNameEQ(normalized)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query patient: %w", err)
	}

	created, err := tx.Patient.Create().
		SetUserID(userID).
		SetFullName(fullName).
		SetNormalizedName(normalized).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return created, nil
}
