package models

import "github.com/google/uuid"

// Mapping source tags persisted on lab results. Ordered roughly by trust.
const (
	MappingSourceAliasExact      = "alias_exact"
	MappingSourceFuzzyAuto       = "fuzzy_auto"
	MappingSourceLLMAuto         = "llm_auto"
	MappingSourceManualResolved  = "manual_resolved"
	MappingSourcePendingApproved = "pending_approved"
	MappingSourceManualApproved  = "manual_approved"
)

// MatchCandidate is one option presented in an ambiguous-match review.
// Exactly one of AnalyteID or ProposedCode is set.
type MatchCandidate struct {
	AnalyteID    *uuid.UUID `json:"analyte_id,omitempty"`
	ProposedCode string     `json:"proposed_code,omitempty"`
	Display      string     `json:"display"`
	Similarity   float64    `json:"similarity"`
}

// MappingOutcome reports what the applier decided for one lab result.
type MappingOutcome struct {
	ResultID  uuid.UUID
	Decision  MappingDecision
	AnalyteID *uuid.UUID
	ReviewID  *uuid.UUID
	PendingID *uuid.UUID
	Score     float64
	Source    string
}

// MappingDecision enumerates the four mutually exclusive applier outcomes.
type MappingDecision string

const (
	DecisionBound    MappingDecision = "bound"
	DecisionReview   MappingDecision = "review"
	DecisionProposal MappingDecision = "proposal"
	DecisionUnmapped MappingDecision = "unmapped"
)

// AnalyteSuggestion is the structured answer of the LLM mapping tier for one
// parameter: either a best-match existing analyte or a new-analyte proposal.
type AnalyteSuggestion struct {
	ParameterName string  `json:"parameter_name"`
	AnalyteCode   string  `json:"analyte_code" jsonschema:"description=Existing analyte code when matched, empty when proposing"`
	Confidence    float64 `json:"confidence"`
	ProposedCode  string  `json:"proposed_code"`
	ProposedName  string  `json:"proposed_name"`
	Variation     string  `json:"variation" jsonschema:"description=The raw spelling this suggestion covers"`
	Language      string  `json:"language"`
}

// AnalyteSuggestionBatch wraps the LLM response for a batch of parameters.
type AnalyteSuggestionBatch struct {
	Suggestions []AnalyteSuggestion `json:"suggestions"`
}
