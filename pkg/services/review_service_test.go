package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/adminaction"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/mapping"
	"github.com/labtrail/labtrail/pkg/services"
	testdb "github.com/labtrail/labtrail/test/database"
)

type reviewFixture struct {
	client  *database.Client
	ctx     context.Context
	reviews *services.ReviewService
	admin   *ent.User
	report  *ent.Report
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	users := services.NewUserService(client.Client)
	admin := registerUser(t, users, "admin@example.com")
	require.NoError(t, users.SetAdmin(ctx, admin.ID, true))

	reports := services.NewReportService(client.Client)
	rep, _, err := reports.PersistExtraction(ctx, persistInput(admin.ID, "checksum-1"))
	require.NoError(t, err)

	backfiller := mapping.NewBackfiller(client.Client, client.DB(), 0.55)
	return &reviewFixture{
		client:  client,
		ctx:     ctx,
		reviews: services.NewReviewService(client.Client, backfiller),
		admin:   admin,
		report:  rep,
	}
}

func (f *reviewFixture) result(t *testing.T, parameterName string) *ent.LabResult {
	t.Helper()
	res, err := f.client.LabResult.Query().
		Where(labresult.ReportIDEQ(f.report.ID), labresult.ParameterNameEQ(parameterName)).
		Only(f.ctx)
	require.NoError(t, err)
	return res
}

func TestResolveReviewBindsAndRecordsAlias(t *testing.T) {
	f := newReviewFixture(t)

	hgb, err := f.client.Analyte.Create().SetCode("HGB").SetName("Hemoglobin").Save(f.ctx)
	require.NoError(t, err)

	res := f.result(t, "Hemoglobin")
	review, err := f.client.MatchReview.Create().
		SetResultID(res.ID).
		SetParameterName("Hemoglobin").
		SetCandidates([]map[string]interface{}{{"display": "Hemoglobin", "similarity": 0.7}}).
		Save(f.ctx)
	require.NoError(t, err)

	resolved, err := f.reviews.ResolveReview(f.ctx, services.ResolveReviewInput{
		ReviewID:    review.ID,
		AnalyteID:   hgb.ID,
		CreateAlias: true,
		Actor:       f.admin,
	})
	require.NoError(t, err)
	assert.Equal(t, matchreview.StatusResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	bound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AnalyteID)
	assert.Equal(t, hgb.ID, *bound.AnalyteID)
	assert.Equal(t, labresult.MappingSourceManualResolved, *bound.MappingSource)

	aliases, err := f.client.AnalyteAlias.Query().
		Where(analytealias.AnalyteIDEQ(hgb.ID)).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, "Hemoglobin", aliases[0].Display)
	assert.Equal(t, analytealias.SourceManual, aliases[0].Source)

	// The decision left an audit trail.
	actions, err := f.client.AdminAction.Query().
		Where(adminaction.ActionEQ("resolve_review")).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, f.admin.Email, actions[0].ActorEmail)

	// Resolving twice is refused.
	_, err = f.reviews.ResolveReview(f.ctx, services.ResolveReviewInput{
		ReviewID:  review.ID,
		AnalyteID: hgb.ID,
		Actor:     f.admin,
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestSkipReview(t *testing.T) {
	f := newReviewFixture(t)

	res := f.result(t, "CRP")
	review, err := f.client.MatchReview.Create().
		SetResultID(res.ID).
		SetParameterName("CRP").
		SetCandidates([]map[string]interface{}{}).
		Save(f.ctx)
	require.NoError(t, err)

	require.NoError(t, f.reviews.SkipReview(f.ctx, review.ID, f.admin))

	skipped, err := f.client.MatchReview.Get(f.ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, matchreview.StatusSkipped, skipped.Status)

	unbound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, unbound.AnalyteID, "skipping must not bind anything")

	assert.ErrorIs(t, f.reviews.SkipReview(f.ctx, review.ID, f.admin), services.ErrNotFound)
}

func TestApprovePendingAnalyteBackfills(t *testing.T) {
	f := newReviewFixture(t)

	// The proposal covers the CRP spelling present in the persisted report.
	pending, err := f.client.PendingAnalyte.Create().
		SetProposedCode("CRP").
		SetProposedName("C-reactive protein").
		SetVariations([]map[string]string{{"text": "CRP", "language": "en"}}).
		Save(f.ctx)
	require.NoError(t, err)

	// A pending review carrying the proposed code for the same result.
	crp := f.result(t, "CRP")
	review, err := f.client.MatchReview.Create().
		SetResultID(crp.ID).
		SetParameterName("CRP").
		SetCandidates([]map[string]interface{}{{"proposed_code": "CRP", "display": "C-reactive protein", "similarity": 0.6}}).
		Save(f.ctx)
	require.NoError(t, err)

	outcome, err := f.reviews.ApprovePendingAnalyte(f.ctx, services.ApprovePendingAnalyteInput{
		PendingID: pending.ID,
		Actor:     f.admin,
	})
	require.NoError(t, err)
	assert.Equal(t, "CRP", outcome.Analyte.Code)
	assert.Equal(t, "C-reactive protein", outcome.Analyte.Name)
	assert.Equal(t, 1, outcome.Backfill.BoundResults, "the matching unmapped result is bound")
	assert.Equal(t, 1, outcome.Backfill.ResolvedReviews)

	bound, err := f.client.LabResult.Get(f.ctx, crp.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AnalyteID)
	assert.Equal(t, outcome.Analyte.ID, *bound.AnalyteID)

	resolvedReview, err := f.client.MatchReview.Get(f.ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, matchreview.StatusResolved, resolvedReview.Status)

	approved, err := f.client.PendingAnalyte.Get(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pendinganalyte.StatusApproved, approved.Status)

	// The variation became a searchable alias.
	aliases, err := f.client.AnalyteAlias.Query().
		Where(analytealias.AnalyteIDEQ(outcome.Analyte.ID)).
		All(f.ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 1)
	assert.Equal(t, analytealias.SourceApproval, aliases[0].Source)

	// Approving again is refused.
	_, err = f.reviews.ApprovePendingAnalyte(f.ctx, services.ApprovePendingAnalyteInput{
		PendingID: pending.ID,
		Actor:     f.admin,
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestDiscardPendingAnalyte(t *testing.T) {
	f := newReviewFixture(t)

	pending, err := f.client.PendingAnalyte.Create().
		SetProposedCode("XX").
		SetProposedName("Noise").
		Save(f.ctx)
	require.NoError(t, err)

	require.NoError(t, f.reviews.DiscardPendingAnalyte(f.ctx, pending.ID, f.admin))

	discarded, err := f.client.PendingAnalyte.Get(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, pendinganalyte.StatusDiscarded, discarded.Status)

	count, err := f.client.Analyte.Query().Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "discarding must not touch the dictionary")

	assert.ErrorIs(t, f.reviews.DiscardPendingAnalyte(f.ctx, pending.ID, f.admin), services.ErrNotFound)
}

func TestResetStoreKeepsDictionaryAndAudit(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.client.Analyte.Create().SetCode("HGB").SetName("Hemoglobin").Save(f.ctx)
	require.NoError(t, err)

	require.NoError(t, f.reviews.ResetStore(f.ctx, f.admin))

	for name, count := range map[string]func() (int, error){
		"patients": func() (int, error) { return f.client.Patient.Query().Count(f.ctx) },
		"reports":  func() (int, error) { return f.client.Report.Query().Count(f.ctx) },
		"results":  func() (int, error) { return f.client.LabResult.Query().Count(f.ctx) },
	} {
		n, err := count()
		require.NoError(t, err)
		assert.Zero(t, n, name)
	}

	analytes, err := f.client.Analyte.Query().Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analytes)

	audit, err := f.client.AdminAction.Query().
		Where(adminaction.ActionEQ("reset_store")).
		Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, audit)
}
