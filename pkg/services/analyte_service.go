package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/pkg/normalize"
)

// AnalyteService manages the canonical analyte dictionary and its aliases.
type AnalyteService struct {
	client *ent.Client
}

// NewAnalyteService creates a new AnalyteService.
func NewAnalyteService(client *ent.Client) *AnalyteService {
	if client == nil {
		panic("NewAnalyteService: client must not be nil")
	}
	return &AnalyteService{client: client}
}

// AliasInput describes one alias to attach to an analyte.
type AliasInput struct {
	Display    string
	Language   string
	Confidence float64
	Source     string
}

// CreateAnalyteInput carries a new dictionary entry with its initial aliases.
type CreateAnalyteInput struct {
	Code    string
	Name    string
	Aliases []AliasInput
}

// CreateAnalyte inserts a new analyte with its aliases in one transaction.
// A duplicate code returns ErrAlreadyExists.
func (s *AnalyteService) CreateAnalyte(httpCtx context.Context, input CreateAnalyteInput) (*ent.Analyte, error) {
	if input.Code == "" {
		return nil, NewValidationError("code", "required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := tx.Analyte.Create().
		SetCode(input.Code).
		SetName(input.Name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create analyte: %w", err)
	}

	for _, alias := range input.Aliases {
		if _, err := createAliasTx(ctx, tx, created.ID, alias); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit analyte: %w", err)
	}
	return created, nil
}

// AddAlias attaches an alias to an existing analyte. Returns (alias, created,
// error); an alias that normalizes to an existing key is returned unchanged.
func (s *AnalyteService) AddAlias(httpCtx context.Context, analyteID uuid.UUID, input AliasInput) (*ent.AnalyteAlias, bool, error) {
	normalized := normalize.Key(input.Display)
	if normalized == "" {
		return nil, false, NewValidationError("display", "empty after normalization")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	existing, err := s.client.AnalyteAlias.Query().
		Where(analytealias.AnalyteIDEQ(analyteID), analytealias.NormalizedEQ(normalized)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query alias: %w", err)
	}

	created, err := s.client.AnalyteAlias.Create().
		SetAnalyteID(analyteID).
		SetNormalized(normalized).
		SetDisplay(input.Display).
		SetLanguage(orDefault(input.Language, "en")).
		SetConfidence(input.Confidence).
		SetSource(analytealias.Source(input.Source)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: the alias landed concurrently; fetch it
			existing, queryErr := s.client.AnalyteAlias.Query().
				Where(analytealias.AnalyteIDEQ(analyteID), analytealias.NormalizedEQ(normalized)).
				Only(ctx)
			if queryErr != nil {
				return nil, false, fmt.Errorf("failed to query alias after constraint error: %w", queryErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create alias: %w", err)
	}
	return created, true, nil
}

// createAliasTx inserts an alias inside an existing transaction, skipping
// keys already present on the analyte.
func createAliasTx(ctx context.Context, tx *ent.Tx, analyteID uuid.UUID, input AliasInput) (*ent.AnalyteAlias, error) {
	normalized := normalize.Key(input.Display)
	if normalized == "" {
		return nil, NewValidationError("display", "empty after normalization")
	}

	existing, err := tx.AnalyteAlias.Query().
		Where(analytealias.AnalyteIDEQ(analyteID), analytealias.NormalizedEQ(normalized)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query alias: %w", err)
	}

	created, err := tx.AnalyteAlias.Create().
		SetAnalyteID(analyteID).
		SetNormalized(normalized).
		SetDisplay(input.Display).
		SetLanguage(orDefault(input.Language, "en")).
		SetConfidence(input.Confidence).
		SetSource(analytealias.Source(input.Source)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alias: %w", err)
	}
	return created, nil
}

// Get fetches an analyte with its aliases.
func (s *AnalyteService) Get(httpCtx context.Context, id uuid.UUID) (*ent.Analyte, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	a, err := s.client.Analyte.Query().
		Where(analyte.IDEQ(id)).
		WithAliases().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analyte: %w", err)
	}
	return a, nil
}

// GetByCode fetches an analyte by its canonical code, or nil when absent.
func (s *AnalyteService) GetByCode(httpCtx context.Context, code string) (*ent.Analyte, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	a, err := s.client.Analyte.Query().
		Where(analyte.CodeEQ(code)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analyte by code: %w", err)
	}
	return a, nil
}

// List returns the dictionary ordered by code, aliases loaded.
func (s *AnalyteService) List(httpCtx context.Context) ([]*ent.Analyte, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	analytes, err := s.client.Analyte.Query().
		Order(ent.Asc(analyte.FieldCode)).
		WithAliases().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analytes: %w", err)
	}
	return analytes, nil
}

// UnmappedParameter is one distinct raw parameter name with no analyte bound.
type UnmappedParameter struct {
	ParameterName string `json:"parameter_name"`
	Count         int    `json:"count"`
}

// ListUnmappedParameters groups unbound results by raw parameter name.
// userID narrows to one owner; adminMode lifts the filter.
func (s *AnalyteService) ListUnmappedParameters(httpCtx context.Context, userID uuid.UUID, adminMode bool) ([]UnmappedParameter, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	query := s.client.LabResult.Query().
		Where(labresult.AnalyteIDIsNil())
	if !adminMode {
		query = query.Where(labresult.UserIDEQ(userID))
	}

	var rows []UnmappedParameter
	err := query.
		GroupBy(labresult.FieldParameterName).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to group unmapped parameters: %w", err)
	}
	return rows, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
