package mapping

import (
	"context"
	"fmt"
	"strings"

	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
)

const suggesterSystemPrompt = `You match raw laboratory parameter names to a dictionary of canonical analytes.

For every parameter, answer with exactly one of:
- an existing analyte: set analyte_code to a code from the dictionary and confidence to your match certainty in [0,1]; leave proposed_code and proposed_name empty.
- a new-analyte proposal: leave analyte_code empty and set proposed_code (SCREAMING_SNAKE, Latin letters and digits), proposed_name (English), variation (the raw spelling as seen), and language (BCP 47 primary tag of the raw spelling, e.g. "en", "ru", "de").

Rules:
- Never invent dictionary codes. analyte_code must literally match an entry.
- Abbreviations count: "Hgb", "HGB" and "Гемоглобин" all mean hemoglobin.
- Units or reference hints inside the name do not change the analyte.
- When genuinely unsure between dictionary entries, pick the best one with a lower confidence rather than proposing a duplicate.`

const suggesterMaxTokens = 4096

// LLMSuggester implements Suggester over a chat-completion client using a
// schema-constrained call.
type LLMSuggester struct {
	client llm.Client
	model  string
}

// NewLLMSuggester creates the tier-three suggester.
func NewLLMSuggester(client llm.Client, model string) *LLMSuggester {
	if client == nil {
		panic("NewLLMSuggester: client must not be nil")
	}
	return &LLMSuggester{client: client, model: model}
}

// SuggestAnalytes asks the model for one verdict per parameter.
func (s *LLMSuggester) SuggestAnalytes(ctx context.Context, parameters []string, dictionary []AnalyteRef) (*models.AnalyteSuggestionBatch, error) {
	schema, err := llm.SchemaFor[models.AnalyteSuggestionBatch]()
	if err != nil {
		return nil, err
	}

	var batch models.AnalyteSuggestionBatch
	err = s.client.Structured(ctx, &llm.StructuredInput{
		Model:        s.model,
		SystemPrompt: suggesterSystemPrompt,
		UserPrompt:   buildSuggestionPrompt(parameters, dictionary),
		SchemaName:   "analyte_suggestions",
		Schema:       schema,
		MaxTokens:    suggesterMaxTokens,
	}, &batch)
	if err != nil {
		return nil, fmt.Errorf("failed analyte suggestion call: %w", err)
	}
	return &batch, nil
}

// buildSuggestionPrompt renders the dictionary and the unmatched parameters.
func buildSuggestionPrompt(parameters []string, dictionary []AnalyteRef) string {
	var b strings.Builder

	b.WriteString("## Analyte dictionary\n\n")
	if len(dictionary) == 0 {
		b.WriteString("(empty; every parameter needs a proposal)\n")
	}
	for _, ref := range dictionary {
		b.WriteString("- ")
		b.WriteString(ref.Code)
		b.WriteString(": ")
		b.WriteString(ref.Name)
		b.WriteString("\n")
	}

	b.WriteString("\n## Parameters to match\n\n")
	for _, p := range parameters {
		b.WriteString("- ")
		b.WriteString(p)
		b.WriteString("\n")
	}

	b.WriteString("\nReturn one suggestion per parameter, echoing parameter_name exactly as listed.")
	return b.String()
}
