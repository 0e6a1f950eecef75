package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
)

// extractionSchemaName names the provider-side structured output.
const extractionSchemaName = "record_lab_report"

const extractionSystemPrompt = `You are a medical lab report digitizer. Extract every measured parameter from the document into the structured schema.

Rules:
- Copy parameter names exactly as printed, including language and abbreviations.
- Numeric results go into value_numeric; qualitative results ("negative", "++", "trace") into value_text; never both.
- Reference intervals: numeric low/high bounds when printed as a range; anything else (e.g. "< 5.0", "negative") verbatim into reference_text.
- Copy the test or collection date exactly as printed into test_date; do not reformat it.
- out_of_range reflects the lab's own flag when printed, otherwise compare the value against the reference interval; use "unknown" when neither is possible.
- Do not invent parameters, values, or reference intervals. Missing optional values are null.`

const extractionUserPrompt = `Extract all laboratory results from this report.`

var (
	schemaOnce       sync.Once
	extractionSchema json.RawMessage
	extractionCheck  *jsonschema.Schema
	schemaErr        error
)

// ExtractionSchema returns the JSON schema the providers must satisfy,
// reflected once from the extraction types.
func ExtractionSchema() (json.RawMessage, error) {
	buildSchemas()
	return extractionSchema, schemaErr
}

// ValidateExtraction checks the provider's raw output against the schema
// before sanitization. Validation failures are terminal for the attempt; the
// provider contract requires bit-exact conformance.
func ValidateExtraction(raw json.RawMessage) error {
	buildSchemas()
	if schemaErr != nil {
		return schemaErr
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("model output is not valid JSON: %w", err)
	}
	if err := extractionCheck.Validate(doc); err != nil {
		return fmt.Errorf("model output violates the extraction schema: %w", err)
	}
	return nil
}

func buildSchemas() {
	schemaOnce.Do(func() {
		raw, err := llm.SchemaFor[models.Extraction]()
		if err != nil {
			schemaErr = fmt.Errorf("failed to reflect extraction schema: %w", err)
			return
		}
		extractionSchema = raw

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("extraction.json", bytes.NewReader(raw)); err != nil {
			schemaErr = fmt.Errorf("failed to load extraction schema: %w", err)
			return
		}
		extractionCheck, err = compiler.Compile("extraction.json")
		if err != nil {
			schemaErr = fmt.Errorf("failed to compile extraction schema: %w", err)
		}
	})
}
