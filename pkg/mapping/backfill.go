package mapping

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/pkg/models"
)

// BackfillOutcome summarizes what an approval re-bound.
type BackfillOutcome struct {
	BoundResults    int
	ResolvedReviews int
}

// Backfiller rebinds unmapped results after the dictionary grows. Fuzzy
// matching runs store-side with pg_trgm so the store's locale folds case
// across the full alphabet present in the data.
type Backfiller struct {
	client    *ent.Client
	db        *stdsql.DB
	threshold float64
}

// NewBackfiller creates a Backfiller. threshold is the minimum similarity
// for phase-one rebinding.
func NewBackfiller(client *ent.Client, db *stdsql.DB, threshold float64) *Backfiller {
	if client == nil {
		panic("NewBackfiller: client must not be nil")
	}
	if db == nil {
		panic("NewBackfiller: db must not be nil")
	}
	return &Backfiller{client: client, db: db, threshold: threshold}
}

// AfterApproval runs the two-phase backfill for a freshly approved analyte:
// (i) bind still-unmapped results whose parameter fuzzy-matches one of the
// new aliases above the threshold, tagged with source; (ii) resolve every
// pending MatchReview referencing proposedCode, binding its result when still
// unbound. Reviews are always marked resolved even when phase one already
// bound their result.
func (b *Backfiller) AfterApproval(ctx context.Context, analyteID uuid.UUID, aliases []string, proposedCode, source string) (BackfillOutcome, error) {
	logger := slog.With("analyte_id", analyteID, "proposed_code", proposedCode)

	outcome := BackfillOutcome{}
	for _, alias := range aliases {
		n, err := b.BackfillAlias(ctx, analyteID, alias, source)
		if err != nil {
			return outcome, err
		}
		outcome.BoundResults += n
	}

	resolved, err := b.resolveReviewsByCode(ctx, analyteID, proposedCode)
	if err != nil {
		return outcome, err
	}
	outcome.ResolvedReviews = resolved

	logger.Info("Approval backfill finished",
		"bound_results", outcome.BoundResults,
		"resolved_reviews", outcome.ResolvedReviews,
	)
	return outcome, nil
}

// BackfillAlias binds every still-unmapped result whose parameter name
// fuzzy-matches alias at or above the threshold. Runs as a single UPDATE so
// the analyte_id IS NULL guard keeps bindings monotonic under concurrency.
func (b *Backfiller) BackfillAlias(ctx context.Context, analyteID uuid.UUID, alias, source string) (int, error) {
	res, err := b.db.ExecContext(ctx, `
		UPDATE lab_results
		SET analyte_id = $1,
		    mapping_confidence = similarity(parameter_name, $2),
		    mapping_source = $3,
		    mapped_at = now()
		WHERE analyte_id IS NULL
		  AND similarity(parameter_name, $2) >= $4`,
		analyteID, alias, source, b.threshold,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill alias %q: %w", alias, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count backfilled rows: %w", err)
	}
	return int(affected), nil
}

// resolveReviewsByCode marks every pending review that carries proposedCode
// among its candidates as resolved, binding the underlying result to the
// analyte when no earlier phase bound it.
func (b *Backfiller) resolveReviewsByCode(ctx context.Context, analyteID uuid.UUID, proposedCode string) (int, error) {
	if proposedCode == "" {
		return 0, nil
	}

	pending, err := b.client.MatchReview.Query().
		Where(matchreview.StatusEQ(matchreview.StatusPending)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending reviews: %w", err)
	}

	resolved := 0
	for _, review := range pending {
		if !candidatesContainCode(review.Candidates, proposedCode) {
			continue
		}

		// Bind only when still unmapped; phase one may have won already.
		n, err := b.client.LabResult.Update().
			Where(labresult.IDEQ(review.ResultID), labresult.AnalyteIDIsNil()).
			SetAnalyteID(analyteID).
			SetMappingConfidence(1.0).
			SetMappingSource(labresult.MappingSourcePendingApproved).
			SetMappedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return resolved, fmt.Errorf("failed to bind reviewed result: %w", err)
		}
		if n == 0 {
			slog.Debug("Reviewed result already bound, resolving review only",
				"review_id", review.ID, "result_id", review.ResultID)
		}

		err = b.client.MatchReview.UpdateOneID(review.ID).
			SetStatus(matchreview.StatusResolved).
			SetResolvedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			return resolved, fmt.Errorf("failed to resolve review: %w", err)
		}
		resolved++
	}
	return resolved, nil
}

// candidatesContainCode scans a review's candidate list for a proposed code.
func candidatesContainCode(raw []map[string]interface{}, code string) bool {
	for _, c := range raw {
		if v, ok := c["proposed_code"].(string); ok && v == code {
			return true
		}
	}
	return false
}

// DecodeCandidates converts the stored JSON candidate list back into typed
// candidates for API responses.
func DecodeCandidates(raw []map[string]interface{}) ([]models.MatchCandidate, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidates: %w", err)
	}
	var out []models.MatchCandidate
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return out, nil
}
