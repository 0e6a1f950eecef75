package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/pkg/mapping"
	"github.com/labtrail/labtrail/pkg/models"
)

// approvalTimeout bounds approve operations, which run a backfill pass.
const approvalTimeout = 30 * time.Second

// ReviewService drives the admin review workflow: ambiguous-match reviews
// and pending new-analyte proposals.
type ReviewService struct {
	client     *ent.Client
	backfiller *mapping.Backfiller
}

// NewReviewService creates a new ReviewService.
func NewReviewService(client *ent.Client, backfiller *mapping.Backfiller) *ReviewService {
	if client == nil {
		panic("NewReviewService: client must not be nil")
	}
	if backfiller == nil {
		panic("NewReviewService: backfiller must not be nil")
	}
	return &ReviewService{client: client, backfiller: backfiller}
}

// ListPendingReviews returns ambiguous matches awaiting a decision, oldest
// first.
func (s *ReviewService) ListPendingReviews(httpCtx context.Context) ([]*ent.MatchReview, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	reviews, err := s.client.MatchReview.Query().
		Where(matchreview.StatusEQ(matchreview.StatusPending)).
		Order(ent.Asc(matchreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}
	return reviews, nil
}

// ResolveReviewInput carries an admin's decision on an ambiguous match.
type ResolveReviewInput struct {
	ReviewID    uuid.UUID
	AnalyteID   uuid.UUID
	CreateAlias bool
	Actor       *ent.User
}

// ResolveReview binds the reviewed result to the chosen analyte, optionally
// records the raw parameter as a new alias, and marks the review resolved.
// The binding is an admin action and overrides any earlier automatic one.
func (s *ReviewService) ResolveReview(httpCtx context.Context, input ResolveReviewInput) (*ent.MatchReview, error) {
	if input.Actor == nil {
		return nil, NewValidationError("actor", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, approvalTimeout)
	defer cancel()

	review, err := s.client.MatchReview.Get(ctx, input.ReviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review.Status != matchreview.StatusPending {
		return nil, ErrAlreadyExists
	}

	target, err := s.client.Analyte.Get(ctx, input.AnalyteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("analyte_id", "unknown analyte")
		}
		return nil, fmt.Errorf("failed to get analyte: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.LabResult.UpdateOneID(review.ResultID).
		SetAnalyteID(target.ID).
		SetMappingConfidence(1.0).
		SetMappingSource(labresult.MappingSourceManualResolved).
		SetMappedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("review_id", "reviewed result no longer exists")
		}
		return nil, fmt.Errorf("failed to bind reviewed result: %w", err)
	}

	aliasCreated := false
	if input.CreateAlias {
		if _, err := createAliasTx(ctx, tx, target.ID, AliasInput{
			Display:    review.ParameterName,
			Confidence: 1.0,
			Source:     "manual",
		}); err != nil {
			return nil, err
		}
		aliasCreated = true
	}

	resolved, err := tx.MatchReview.UpdateOneID(review.ID).
		SetStatus(matchreview.StatusResolved).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve review: %w", err)
	}

	if err := recordActionTx(ctx, tx, input.Actor, "resolve_review", review.ID.String(), map[string]interface{}{
		"analyte_id":     target.ID.String(),
		"analyte_code":   target.Code,
		"parameter_name": review.ParameterName,
		"alias_created":  aliasCreated,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review resolution: %w", err)
	}

	// A fresh alias can satisfy other unmapped rows with the same spelling.
	if aliasCreated {
		if _, err := s.backfiller.BackfillAlias(ctx, target.ID, review.ParameterName, models.MappingSourceManualResolved); err != nil {
			return nil, fmt.Errorf("review resolved but alias backfill failed: %w", err)
		}
	}
	return resolved, nil
}

// SkipReview marks a review skipped without binding anything.
func (s *ReviewService) SkipReview(httpCtx context.Context, reviewID uuid.UUID, actor *ent.User) error {
	if actor == nil {
		return NewValidationError("actor", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.MatchReview.Update().
		Where(matchreview.IDEQ(reviewID), matchreview.StatusEQ(matchreview.StatusPending)).
		SetStatus(matchreview.StatusSkipped).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to skip review: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := recordActionTx(ctx, tx, actor, "skip_review", reviewID.String(), nil); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review skip: %w", err)
	}
	return nil
}

// ListPendingAnalytes returns new-analyte proposals awaiting a decision.
func (s *ReviewService) ListPendingAnalytes(httpCtx context.Context) ([]*ent.PendingAnalyte, error) {
	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	pending, err := s.client.PendingAnalyte.Query().
		Where(pendinganalyte.StatusEQ(pendinganalyte.StatusPending)).
		Order(ent.Asc(pendinganalyte.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending analytes: %w", err)
	}
	return pending, nil
}

// ApprovalOutcome reports the approved analyte and what the backfill bound.
type ApprovalOutcome struct {
	Analyte  *ent.Analyte
	Backfill mapping.BackfillOutcome
}

// ApprovePendingAnalyteInput carries the approval; Code and Name override the
// proposal when set.
type ApprovePendingAnalyteInput struct {
	PendingID uuid.UUID
	Code      string
	Name      string
	Actor     *ent.User
}

// ApprovePendingAnalyte creates the analyte with aliases from the proposal's
// variations, then backfills: unmapped results fuzzy-matching a new alias are
// bound, and every review referencing the proposed code is resolved.
func (s *ReviewService) ApprovePendingAnalyte(httpCtx context.Context, input ApprovePendingAnalyteInput) (*ApprovalOutcome, error) {
	if input.Actor == nil {
		return nil, NewValidationError("actor", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, approvalTimeout)
	defer cancel()

	pending, err := s.client.PendingAnalyte.Get(ctx, input.PendingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending analyte: %w", err)
	}
	if pending.Status != pendinganalyte.StatusPending {
		return nil, ErrAlreadyExists
	}

	code := orDefault(input.Code, pending.ProposedCode)
	name := orDefault(input.Name, pending.ProposedName)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := tx.Analyte.Create().
		SetCode(code).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create analyte: %w", err)
	}

	aliasTexts := make([]string, 0, len(pending.Variations))
	for _, variation := range pending.Variations {
		text := variation["text"]
		if text == "" {
			continue
		}
		if _, err := createAliasTx(ctx, tx, created.ID, AliasInput{
			Display:    text,
			Language:   variation["language"],
			Confidence: 1.0,
			Source:     "approval",
		}); err != nil {
			return nil, err
		}
		aliasTexts = append(aliasTexts, text)
	}

	err = tx.PendingAnalyte.UpdateOneID(pending.ID).
		SetStatus(pendinganalyte.StatusApproved).
		SetResolvedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark proposal approved: %w", err)
	}

	if err := recordActionTx(ctx, tx, input.Actor, "approve_pending_analyte", pending.ID.String(), map[string]interface{}{
		"code":    code,
		"name":    name,
		"aliases": aliasTexts,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}

	backfill, err := s.backfiller.AfterApproval(ctx, created.ID, aliasTexts, pending.ProposedCode, models.MappingSourceManualApproved)
	if err != nil {
		return nil, fmt.Errorf("analyte approved but backfill failed: %w", err)
	}

	return &ApprovalOutcome{Analyte: created, Backfill: backfill}, nil
}

// DiscardPendingAnalyte marks a proposal discarded.
func (s *ReviewService) DiscardPendingAnalyte(httpCtx context.Context, pendingID uuid.UUID, actor *ent.User) error {
	if actor == nil {
		return NewValidationError("actor", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, serviceTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.PendingAnalyte.Update().
		Where(pendinganalyte.IDEQ(pendingID), pendinganalyte.StatusEQ(pendinganalyte.StatusPending)).
		SetStatus(pendinganalyte.StatusDiscarded).
		SetResolvedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to discard pending analyte: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := recordActionTx(ctx, tx, actor, "discard_pending_analyte", pendingID.String(), nil); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit discard: %w", err)
	}
	return nil
}

// ResetStore wipes all user data: patients, reports, results, reviews, and
// proposals. The analyte dictionary, accounts, and the audit trail survive.
func (s *ReviewService) ResetStore(httpCtx context.Context, actor *ent.User) error {
	if actor == nil {
		return NewValidationError("actor", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, approvalTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Delete order respects references from reviews and results.
	if _, err := tx.MatchReview.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear reviews: %w", err)
	}
	if _, err := tx.PendingAnalyte.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear pending analytes: %w", err)
	}
	if _, err := tx.LabResult.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear lab results: %w", err)
	}
	if _, err := tx.Report.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}
	if _, err := tx.Patient.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear patients: %w", err)
	}

	if err := recordActionTx(ctx, tx, actor, "reset_store", "", nil); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

// recordActionTx appends an audit row inside an open transaction so the
// mutation and its trail commit together.
func recordActionTx(ctx context.Context, tx *ent.Tx, actor *ent.User, action, target string, detail map[string]interface{}) error {
	builder := tx.AdminAction.Create().
		SetActorID(actor.ID).
		SetActorEmail(actor.Email).
		SetAction(action)
	if target != "" {
		builder.SetTarget(target)
	}
	if detail != nil {
		builder.SetDetail(detail)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record admin action: %w", err)
	}
	return nil
}
