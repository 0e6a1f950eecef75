// Package mapping implements the three-tier analyte matcher: exact alias,
// store-side fuzzy trigram, then batched LLM suggestion. Every result ends in
// exactly one of four states: bound, queued for review, queued as a new
// analyte proposal, or unmapped.
package mapping

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/normalize"
)

// fuzzyCandidateLimit caps how many alias matches a review records.
const fuzzyCandidateLimit = 5

// AnalyteRef is the dictionary slice handed to the suggester prompt.
type AnalyteRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Suggester is the LLM tier. Given raw parameter names and the current
// dictionary it returns, per parameter, either a best-match existing analyte
// with confidence or a new-analyte proposal. A nil Suggester disables tier 3.
type Suggester interface {
	SuggestAnalytes(ctx context.Context, parameters []string, dictionary []AnalyteRef) (*models.AnalyteSuggestionBatch, error)
}

// Engine applies the tiered matcher to lab results.
type Engine struct {
	client     *ent.Client
	db         *stdsql.DB
	suggester  Suggester
	autoAccept float64
	queueLower float64
}

// NewEngine creates a mapping engine. db carries the trigram queries that
// ent cannot express.
func NewEngine(client *ent.Client, db *stdsql.DB, suggester Suggester, autoAccept, queueLower float64) *Engine {
	if client == nil {
		panic("NewEngine: client must not be nil")
	}
	if db == nil {
		panic("NewEngine: db must not be nil")
	}
	return &Engine{
		client:     client,
		db:         db,
		suggester:  suggester,
		autoAccept: autoAccept,
		queueLower: queueLower,
	}
}

// MapReportAsync runs MapReport on a fresh goroutine, detached from the
// caller's lifetime. Ingestion completion must not block on mapping.
func (e *Engine) MapReportAsync(reportID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := e.MapReport(ctx, reportID); err != nil {
			slog.Error("Async mapping failed", "report_id", reportID, "error", err)
		}
	}()
}

// MapReport maps every unbound result of a report and returns the outcomes.
func (e *Engine) MapReport(ctx context.Context, reportID uuid.UUID) ([]models.MappingOutcome, error) {
	results, err := e.client.LabResult.Query().
		Where(labresult.ReportIDEQ(reportID), labresult.AnalyteIDIsNil()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load unmapped results: %w", err)
	}
	return e.MapResults(ctx, results)
}

// MapResults runs the tier cascade over the given results. Tiers one and two
// run per result; leftovers are batched into a single LLM call.
func (e *Engine) MapResults(ctx context.Context, results []*ent.LabResult) ([]models.MappingOutcome, error) {
	logger := slog.With("component", "mapping", "results", len(results))

	outcomes := make([]models.MappingOutcome, 0, len(results))
	var leftovers []*ent.LabResult

	for _, result := range results {
		outcome, matched, err := e.mapStoreTiers(ctx, result)
		if err != nil {
			return outcomes, err
		}
		if matched {
			outcomes = append(outcomes, outcome)
			continue
		}
		leftovers = append(leftovers, result)
	}

	if len(leftovers) > 0 && e.suggester != nil {
		llmOutcomes, err := e.mapLLMTier(ctx, leftovers)
		if err != nil {
			// The store tiers already committed their work; suggestion
			// failures leave the leftovers unmapped rather than failing
			// the whole report.
			logger.Warn("LLM suggestion tier failed, leaving results unmapped", "error", err)
			for _, r := range leftovers {
				outcomes = append(outcomes, models.MappingOutcome{
					ResultID: r.ID,
					Decision: models.DecisionUnmapped,
				})
			}
			return outcomes, nil
		}
		outcomes = append(outcomes, llmOutcomes...)
	} else {
		for _, r := range leftovers {
			outcomes = append(outcomes, models.MappingOutcome{
				ResultID: r.ID,
				Decision: models.DecisionUnmapped,
			})
		}
	}

	logger.Info("Mapping pass finished", "outcomes", len(outcomes))
	return outcomes, nil
}

// mapStoreTiers tries the exact-alias and fuzzy-trigram tiers. Returns
// matched=false when the result should fall through to the LLM tier.
func (e *Engine) mapStoreTiers(ctx context.Context, result *ent.LabResult) (models.MappingOutcome, bool, error) {
	key := normalize.Key(result.ParameterName)
	if key == "" {
		return models.MappingOutcome{ResultID: result.ID, Decision: models.DecisionUnmapped}, true, nil
	}

	// Tier 1: exact alias.
	exact, err := e.client.AnalyteAlias.Query().
		Where(analytealias.NormalizedEQ(key)).
		Order(ent.Desc(analytealias.FieldConfidence)).
		First(ctx)
	if err == nil {
		if _, err := e.bind(ctx, result.ID, exact.AnalyteID, 1.0, labresult.MappingSourceAliasExact); err != nil {
			return models.MappingOutcome{}, false, err
		}
		return models.MappingOutcome{
			ResultID:  result.ID,
			Decision:  models.DecisionBound,
			AnalyteID: &exact.AnalyteID,
			Score:     1.0,
			Source:    models.MappingSourceAliasExact,
		}, true, nil
	}
	if !ent.IsNotFound(err) {
		return models.MappingOutcome{}, false, fmt.Errorf("failed exact alias lookup: %w", err)
	}

	// Tier 2: store-side trigram similarity.
	candidates, err := e.fuzzyCandidates(ctx, key)
	if err != nil {
		return models.MappingOutcome{}, false, err
	}
	if len(candidates) == 0 {
		return models.MappingOutcome{}, false, nil // fall through to LLM
	}

	top := candidates[0]
	if top.Similarity >= e.autoAccept {
		if _, err := e.bind(ctx, result.ID, *top.AnalyteID, top.Similarity, labresult.MappingSourceFuzzyAuto); err != nil {
			return models.MappingOutcome{}, false, err
		}
		return models.MappingOutcome{
			ResultID:  result.ID,
			Decision:  models.DecisionBound,
			AnalyteID: top.AnalyteID,
			Score:     top.Similarity,
			Source:    models.MappingSourceFuzzyAuto,
		}, true, nil
	}
	if top.Similarity >= e.queueLower {
		reviewID, err := e.queueReview(ctx, result, candidates)
		if err != nil {
			return models.MappingOutcome{}, false, err
		}
		return models.MappingOutcome{
			ResultID: result.ID,
			Decision: models.DecisionReview,
			ReviewID: &reviewID,
			Score:    top.Similarity,
		}, true, nil
	}

	// No plausible store candidate.
	return models.MappingOutcome{}, false, nil
}

// fuzzyCandidates returns alias matches for key ordered by similarity,
// highest first. Matching runs in the store so its locale folds case across
// every alphabet in the data; candidates are per alias, so distinct
// spellings of one analyte each appear.
func (e *Engine) fuzzyCandidates(ctx context.Context, key string) ([]models.MatchCandidate, error) {
	rows, err := e.db.QueryContext(ctx, `
		SELECT al.analyte_id, al.display, similarity(al.normalized, $1) AS sim
		FROM analyte_aliases al
		WHERE al.normalized % $1
		ORDER BY sim DESC, al.display ASC
		LIMIT $2`,
		key, fuzzyCandidateLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed fuzzy alias query: %w", err)
	}
	defer rows.Close()

	var candidates []models.MatchCandidate
	for rows.Next() {
		var (
			analyteID uuid.UUID
			display   string
			sim       float64
		)
		if err := rows.Scan(&analyteID, &display, &sim); err != nil {
			return nil, fmt.Errorf("failed to scan fuzzy candidate: %w", err)
		}
		id := analyteID
		candidates = append(candidates, models.MatchCandidate{
			AnalyteID:  &id,
			Display:    display,
			Similarity: sim,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fuzzy candidates: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	return candidates, nil
}

// mapLLMTier batches the leftover parameters into one suggestion call and
// applies the per-parameter verdicts.
func (e *Engine) mapLLMTier(ctx context.Context, leftovers []*ent.LabResult) ([]models.MappingOutcome, error) {
	byKey := make(map[string][]*ent.LabResult)
	var parameters []string
	for _, r := range leftovers {
		key := normalize.Key(r.ParameterName)
		if _, seen := byKey[key]; !seen {
			parameters = append(parameters, r.ParameterName)
		}
		byKey[key] = append(byKey[key], r)
	}

	dictionary, err := e.dictionary(ctx)
	if err != nil {
		return nil, err
	}

	batch, err := e.suggester.SuggestAnalytes(ctx, parameters, dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to get analyte suggestions: %w", err)
	}

	var outcomes []models.MappingOutcome
	handled := make(map[string]bool)
	for _, suggestion := range batch.Suggestions {
		key := normalize.Key(suggestion.ParameterName)
		results := byKey[key]
		if len(results) == 0 {
			slog.Warn("Suggestion for unknown parameter ignored", "parameter", suggestion.ParameterName)
			continue
		}
		handled[key] = true

		applied, err := e.applySuggestion(ctx, suggestion, results)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, applied...)
	}

	// Parameters the model skipped stay unmapped.
	for key, results := range byKey {
		if handled[key] {
			continue
		}
		for _, r := range results {
			outcomes = append(outcomes, models.MappingOutcome{
				ResultID: r.ID,
				Decision: models.DecisionUnmapped,
			})
		}
	}
	return outcomes, nil
}

// applySuggestion maps one suggestion onto every result sharing the
// parameter key.
func (e *Engine) applySuggestion(ctx context.Context, suggestion models.AnalyteSuggestion, results []*ent.LabResult) ([]models.MappingOutcome, error) {
	var outcomes []models.MappingOutcome

	// (a) best-match existing analyte.
	if suggestion.AnalyteCode != "" {
		target, err := e.client.Analyte.Query().
			Where(analyte.CodeEQ(suggestion.AnalyteCode)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to resolve suggested analyte: %w", err)
		}
		if err == nil {
			for _, r := range results {
				outcome, err := e.applyExistingSuggestion(ctx, suggestion, r, target)
				if err != nil {
					return outcomes, err
				}
				outcomes = append(outcomes, outcome)
			}
			return outcomes, nil
		}
		slog.Warn("Suggested analyte code not in dictionary, treating as proposal",
			"code", suggestion.AnalyteCode, "parameter", suggestion.ParameterName)
	}

	// (b) new-analyte proposal.
	if suggestion.ProposedCode == "" {
		for _, r := range results {
			outcomes = append(outcomes, models.MappingOutcome{
				ResultID: r.ID,
				Decision: models.DecisionUnmapped,
			})
		}
		return outcomes, nil
	}

	pendingID, err := e.queueProposal(ctx, suggestion, results)
	if err != nil {
		return outcomes, err
	}
	for _, r := range results {
		outcomes = append(outcomes, models.MappingOutcome{
			ResultID:  r.ID,
			Decision:  models.DecisionProposal,
			PendingID: &pendingID,
		})
	}
	return outcomes, nil
}

func (e *Engine) applyExistingSuggestion(ctx context.Context, suggestion models.AnalyteSuggestion, result *ent.LabResult, target *ent.Analyte) (models.MappingOutcome, error) {
	switch {
	case suggestion.Confidence >= e.autoAccept:
		if _, err := e.bind(ctx, result.ID, target.ID, suggestion.Confidence, labresult.MappingSourceLlmAuto); err != nil {
			return models.MappingOutcome{}, err
		}
		return models.MappingOutcome{
			ResultID:  result.ID,
			Decision:  models.DecisionBound,
			AnalyteID: &target.ID,
			Score:     suggestion.Confidence,
			Source:    models.MappingSourceLLMAuto,
		}, nil

	case suggestion.Confidence >= e.queueLower:
		reviewID, err := e.queueReview(ctx, result, []models.MatchCandidate{{
			AnalyteID:  &target.ID,
			Display:    target.Name,
			Similarity: suggestion.Confidence,
		}})
		if err != nil {
			return models.MappingOutcome{}, err
		}
		return models.MappingOutcome{
			ResultID: result.ID,
			Decision: models.DecisionReview,
			ReviewID: &reviewID,
			Score:    suggestion.Confidence,
		}, nil

	default:
		return models.MappingOutcome{
			ResultID: result.ID,
			Decision: models.DecisionUnmapped,
		}, nil
	}
}

// bind sets the analyte reference if the result is still unbound. The
// IS NULL guard keeps bindings monotonic under concurrent mapping passes.
func (e *Engine) bind(ctx context.Context, resultID, analyteID uuid.UUID, confidence float64, source labresult.MappingSource) (bool, error) {
	n, err := e.client.LabResult.Update().
		Where(labresult.IDEQ(resultID), labresult.AnalyteIDIsNil()).
		SetAnalyteID(analyteID).
		SetMappingConfidence(confidence).
		SetMappingSource(source).
		SetMappedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to bind result: %w", err)
	}
	return n > 0, nil
}

// queueReview creates a pending MatchReview for the result unless one exists.
func (e *Engine) queueReview(ctx context.Context, result *ent.LabResult, candidates []models.MatchCandidate) (uuid.UUID, error) {
	existing, err := e.client.MatchReview.Query().
		Where(matchreview.ResultIDEQ(result.ID), matchreview.StatusEQ(matchreview.StatusPending)).
		First(ctx)
	if err == nil {
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	encoded, err := encodeCandidates(candidates)
	if err != nil {
		return uuid.Nil, err
	}

	review, err := e.client.MatchReview.Create().
		SetResultID(result.ID).
		SetParameterName(result.ParameterName).
		SetCandidates(encoded).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create match review: %w", err)
	}
	return review.ID, nil
}

// queueProposal records or extends a pending new-analyte proposal.
func (e *Engine) queueProposal(ctx context.Context, suggestion models.AnalyteSuggestion, results []*ent.LabResult) (uuid.UUID, error) {
	evidence := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		evidence = append(evidence, map[string]interface{}{
			"result_id":      r.ID.String(),
			"parameter_name": r.ParameterName,
		})
	}
	variation := map[string]string{
		"text":     orParameter(suggestion.Variation, suggestion.ParameterName),
		"language": orLanguage(suggestion.Language),
	}

	existing, err := e.client.PendingAnalyte.Query().
		Where(
			pendinganalyte.ProposedCodeEQ(suggestion.ProposedCode),
			pendinganalyte.StatusEQ(pendinganalyte.StatusPending),
		).
		First(ctx)
	if err == nil {
		update := existing.Update().
			SetEvidence(append(existing.Evidence, evidence...))
		if !variationKnown(existing.Variations, variation["text"]) {
			update.SetVariations(append(existing.Variations, variation))
		}
		if err := update.Exec(ctx); err != nil {
			return uuid.Nil, fmt.Errorf("failed to extend pending analyte: %w", err)
		}
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return uuid.Nil, fmt.Errorf("failed to check pending analyte: %w", err)
	}

	created, err := e.client.PendingAnalyte.Create().
		SetProposedCode(suggestion.ProposedCode).
		SetProposedName(orParameter(suggestion.ProposedName, suggestion.ParameterName)).
		SetEvidence(evidence).
		SetVariations([]map[string]string{variation}).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create pending analyte: %w", err)
	}
	return created.ID, nil
}

// dictionary loads the (code, name) slice handed to the suggester.
func (e *Engine) dictionary(ctx context.Context) ([]AnalyteRef, error) {
	analytes, err := e.client.Analyte.Query().
		Order(ent.Asc(analyte.FieldCode)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	refs := make([]AnalyteRef, 0, len(analytes))
	for _, a := range analytes {
		refs = append(refs, AnalyteRef{Code: a.Code, Name: a.Name})
	}
	return refs, nil
}

func encodeCandidates(candidates []models.MatchCandidate) ([]map[string]interface{}, error) {
	buf, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidates: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, fmt.Errorf("failed to convert candidates: %w", err)
	}
	return out, nil
}

func variationKnown(variations []map[string]string, text string) bool {
	key := normalize.Key(text)
	for _, v := range variations {
		if normalize.Key(v["text"]) == key {
			return true
		}
	}
	return false
}

func orParameter(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orLanguage(s string) string {
	if s == "" {
		return "en"
	}
	return s
}
