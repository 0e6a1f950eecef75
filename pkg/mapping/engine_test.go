package mapping_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/pkg/database"
	"github.com/labtrail/labtrail/pkg/mapping"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/normalize"
	testdb "github.com/labtrail/labtrail/test/database"
)

// scriptedSuggester replays one canned batch; nil batch fails the call.
type scriptedSuggester struct {
	batch *models.AnalyteSuggestionBatch
	seen  []string
}

func (s *scriptedSuggester) SuggestAnalytes(_ context.Context, parameters []string, _ []mapping.AnalyteRef) (*models.AnalyteSuggestionBatch, error) {
	s.seen = parameters
	if s.batch == nil {
		return nil, errors.New("suggester unavailable")
	}
	return s.batch, nil
}

type engineFixture struct {
	client  *database.Client
	ctx     context.Context
	userID  uuid.UUID
	report  *ent.Report
	analyte *ent.Analyte
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	u, err := client.User.Create().
		SetEmail("jane@example.com").
		SetDisplayName("Jane").
		Save(ctx)
	require.NoError(t, err)

	pat, err := client.Patient.Create().
		SetUserID(u.ID).
		SetFullName("Jane Doe").
		SetNormalizedName(normalize.Key("Jane Doe")).
		Save(ctx)
	require.NoError(t, err)

	rep, err := client.Report.Create().
		SetUserID(u.ID).
		SetPatientID(pat.ID).
		SetFilename("report.pdf").
		SetMimeType("application/pdf").
		SetStoragePath("ab/cd/x").
		SetChecksum("checksum-1").
		SetStatus(report.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	hgb, err := client.Analyte.Create().
		SetCode("HGB").
		SetName("Hemoglobin").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.AnalyteAlias.Create().
		SetAnalyteID(hgb.ID).
		SetNormalized(normalize.Key("Hemoglobin")).
		SetDisplay("Hemoglobin").
		Save(ctx)
	require.NoError(t, err)

	return &engineFixture{client: client, ctx: ctx, userID: u.ID, report: rep, analyte: hgb}
}

func (f *engineFixture) addResult(t *testing.T, parameterName string) *ent.LabResult {
	t.Helper()
	res, err := f.client.LabResult.Create().
		SetReportID(f.report.ID).
		SetUserID(f.userID).
		SetPatientID(f.report.PatientID).
		SetParameterName(parameterName).
		Save(f.ctx)
	require.NoError(t, err)
	return res
}

func (f *engineFixture) engine(suggester mapping.Suggester, autoAccept, queueLower float64) *mapping.Engine {
	return mapping.NewEngine(f.client.Client, f.client.DB(), suggester, autoAccept, queueLower)
}

func TestExactAliasBinds(t *testing.T) {
	f := newEngineFixture(t)
	res := f.addResult(t, "HEMOGLOBIN") // exact after normalization

	outcomes, err := f.engine(nil, 0.85, 0.60).MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionBound, outcomes[0].Decision)
	assert.Equal(t, models.MappingSourceAliasExact, outcomes[0].Source)
	assert.Equal(t, 1.0, outcomes[0].Score)

	bound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AnalyteID)
	assert.Equal(t, f.analyte.ID, *bound.AnalyteID)
	assert.Equal(t, labresult.MappingSourceAliasExact, *bound.MappingSource)
	assert.NotNil(t, bound.MappedAt)
}

func TestFuzzyAutoAccept(t *testing.T) {
	f := newEngineFixture(t)
	res := f.addResult(t, "Hemoglobine") // near-miss spelling

	outcomes, err := f.engine(nil, 0.50, 0.30).MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionBound, outcomes[0].Decision)
	assert.Equal(t, models.MappingSourceFuzzyAuto, outcomes[0].Source)
	assert.Greater(t, outcomes[0].Score, 0.5)

	bound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AnalyteID)
	assert.Equal(t, f.analyte.ID, *bound.AnalyteID)
}

func TestFuzzyQueuesReview(t *testing.T) {
	f := newEngineFixture(t)
	res := f.addResult(t, "Hemoglobine")

	// Below auto-accept but above the review floor: queue for a human.
	engine := f.engine(nil, 0.99, 0.30)
	outcomes, err := engine.MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionReview, outcomes[0].Decision)
	require.NotNil(t, outcomes[0].ReviewID)

	review, err := f.client.MatchReview.Get(f.ctx, *outcomes[0].ReviewID)
	require.NoError(t, err)
	assert.Equal(t, matchreview.StatusPending, review.Status)
	assert.Equal(t, "Hemoglobine", review.ParameterName)
	require.NotEmpty(t, review.Candidates)
	assert.Equal(t, "Hemoglobin", review.Candidates[0]["display"])

	// A second pass reuses the pending review instead of duplicating it.
	again, err := engine.MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, *outcomes[0].ReviewID, *again[0].ReviewID)
	count, err := f.client.MatchReview.Query().Count(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	unbound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, unbound.AnalyteID)
}

func TestLLMTierBindsExistingAnalyte(t *testing.T) {
	f := newEngineFixture(t)
	res := f.addResult(t, "Hgb. konc.")

	suggester := &scriptedSuggester{batch: &models.AnalyteSuggestionBatch{
		Suggestions: []models.AnalyteSuggestion{{
			ParameterName: "Hgb. konc.",
			AnalyteCode:   "HGB",
			Confidence:    0.93,
			Language:      "da",
		}},
	}}

	outcomes, err := f.engine(suggester, 0.85, 0.60).MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionBound, outcomes[0].Decision)
	assert.Equal(t, models.MappingSourceLLMAuto, outcomes[0].Source)
	assert.Equal(t, []string{"Hgb. konc."}, suggester.seen)

	bound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AnalyteID)
	assert.Equal(t, f.analyte.ID, *bound.AnalyteID)
	assert.Equal(t, labresult.MappingSourceLlmAuto, *bound.MappingSource)
}

func TestLLMTierQueuesProposal(t *testing.T) {
	f := newEngineFixture(t)
	f.addResult(t, "Transglutaminase IgA")

	suggester := &scriptedSuggester{batch: &models.AnalyteSuggestionBatch{
		Suggestions: []models.AnalyteSuggestion{{
			ParameterName: "Transglutaminase IgA",
			ProposedCode:  "TTG_IGA",
			ProposedName:  "Tissue transglutaminase IgA",
			Variation:     "Transglutaminase IgA",
			Language:      "en",
		}},
	}}
	engine := f.engine(suggester, 0.85, 0.60)

	outcomes, err := engine.MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionProposal, outcomes[0].Decision)
	require.NotNil(t, outcomes[0].PendingID)

	pending, err := f.client.PendingAnalyte.Get(f.ctx, *outcomes[0].PendingID)
	require.NoError(t, err)
	assert.Equal(t, pendinganalyte.StatusPending, pending.Status)
	assert.Equal(t, "TTG_IGA", pending.ProposedCode)
	assert.Equal(t, "Tissue transglutaminase IgA", pending.ProposedName)
	require.Len(t, pending.Evidence, 1)
	require.Len(t, pending.Variations, 1)
	assert.Equal(t, "en", pending.Variations[0]["language"])

	// More evidence for the same code extends the proposal. Proposals do
	// not bind, so the first result shows up again and stays unmapped.
	second := f.addResult(t, "tTG-IgA")
	suggester.batch.Suggestions[0].ParameterName = "tTG-IgA"
	suggester.batch.Suggestions[0].Variation = "tTG-IgA"
	again, err := engine.MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, again, 2)
	for _, outcome := range again {
		if outcome.ResultID == second.ID {
			assert.Equal(t, models.DecisionProposal, outcome.Decision)
			require.NotNil(t, outcome.PendingID)
			assert.Equal(t, *outcomes[0].PendingID, *outcome.PendingID)
		} else {
			assert.Equal(t, models.DecisionUnmapped, outcome.Decision)
		}
	}

	extended, err := f.client.PendingAnalyte.Get(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.Len(t, extended.Evidence, 2)
	assert.Len(t, extended.Variations, 2)
}

func TestSuggesterFailureLeavesUnmapped(t *testing.T) {
	f := newEngineFixture(t)
	res := f.addResult(t, "Unknown parameter")

	outcomes, err := f.engine(&scriptedSuggester{}, 0.85, 0.60).MapReport(f.ctx, f.report.ID)
	require.NoError(t, err, "a failed suggestion tier must not fail the report")
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionUnmapped, outcomes[0].Decision)

	unbound, err := f.client.LabResult.Get(f.ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, unbound.AnalyteID)
}

func TestNilSuggesterLeavesUnmapped(t *testing.T) {
	f := newEngineFixture(t)
	f.addResult(t, "Unknown parameter")

	outcomes, err := f.engine(nil, 0.85, 0.60).MapReport(f.ctx, f.report.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, models.DecisionUnmapped, outcomes[0].Decision)
}
