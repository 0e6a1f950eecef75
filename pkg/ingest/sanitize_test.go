package ingest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/pkg/models"
)

func sanitizeJSON(t *testing.T, raw string) *models.Extraction {
	t.Helper()
	extraction, err := Sanitize(json.RawMessage(raw))
	require.NoError(t, err)
	return extraction
}

func TestSanitizeDropsNamelessRows(t *testing.T) {
	extraction := sanitizeJSON(t, `{
		"patient_name": "Alice Example",
		"test_date": "2024-01-15",
		"lab_name": "Central Lab",
		"results": [
			{"parameter_name": "Hemoglobin", "value_numeric": 13.2, "unit": "g/dL", "out_of_range": "within"},
			{"parameter_name": "   ", "value_numeric": 1.0, "out_of_range": "unknown"}
		],
		"summary": {"total_parameters": 99, "out_of_range_count": 99}
	}`)

	require.Len(t, extraction.Results, 1)
	assert.Equal(t, "Hemoglobin", extraction.Results[0].ParameterName)
	// The model's summary is never trusted.
	assert.Equal(t, 1, extraction.Summary.TotalParameters)
	assert.Equal(t, 0, extraction.Summary.OutOfRangeCount)
}

func TestSanitizeRejectsEmptyExtraction(t *testing.T) {
	_, err := Sanitize(json.RawMessage(`{"patient_name": "Bob", "results": []}`))
	assert.Error(t, err)

	_, err = Sanitize(json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestSanitizePromotesDecimalCommaValues(t *testing.T) {
	extraction := sanitizeJSON(t, `{
		"patient_name": "Alice",
		"results": [
			{"parameter_name": "Glucose", "value_text": "5,4", "unit": "mmol/L", "out_of_range": "unknown"}
		]
	}`)

	row := extraction.Results[0]
	require.NotNil(t, row.ValueNumeric)
	assert.InDelta(t, 5.4, *row.ValueNumeric, 1e-9)
	assert.Nil(t, row.ValueText)
}

func TestSanitizeDerivesOutOfRange(t *testing.T) {
	extraction := sanitizeJSON(t, `{
		"patient_name": "Alice",
		"results": [
			{"parameter_name": "High", "value_numeric": 9.0, "reference_low": 1.0, "reference_high": 5.0, "out_of_range": "unknown"},
			{"parameter_name": "Low", "value_numeric": 0.5, "reference_low": 1.0, "reference_high": 5.0, "out_of_range": "unknown"},
			{"parameter_name": "Within", "value_numeric": 3.0, "reference_low": 1.0, "reference_high": 5.0, "out_of_range": "unknown"},
			{"parameter_name": "NoRef", "value_numeric": 3.0, "out_of_range": "unknown"},
			{"parameter_name": "BadEnum", "value_numeric": 9.0, "reference_high": 5.0, "out_of_range": "banana"}
		]
	}`)

	byName := map[string]models.ExtractionRow{}
	for _, row := range extraction.Results {
		byName[row.ParameterName] = row
	}
	assert.Equal(t, models.RangeAbove, byName["High"].OutOfRange)
	assert.Equal(t, models.RangeBelow, byName["Low"].OutOfRange)
	assert.Equal(t, models.RangeWithin, byName["Within"].OutOfRange)
	assert.Equal(t, models.RangeUnknown, byName["NoRef"].OutOfRange)
	// Invalid enum resets to unknown, then the reference rederives it.
	assert.Equal(t, models.RangeAbove, byName["BadEnum"].OutOfRange)

	assert.Equal(t, 5, extraction.Summary.TotalParameters)
	assert.Equal(t, 3, extraction.Summary.OutOfRangeCount)
}

func TestSanitizeClampsRunawayStrings(t *testing.T) {
	long := strings.Repeat("x", 2000)
	extraction := sanitizeJSON(t, `{
		"patient_name": "`+long+`",
		"results": [
			{"parameter_name": "`+long+`", "value_text": "`+long+`", "out_of_range": "within"}
		]
	}`)

	assert.Len(t, extraction.PatientName, maxNameLength)
	assert.Len(t, extraction.Results[0].ParameterName, maxNameLength)
	require.NotNil(t, extraction.Results[0].ValueText)
	assert.Len(t, *extraction.Results[0].ValueText, maxValueLength)
}

func TestClampStringCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", clampString("  a \t b\n\nc  ", 100))
	assert.Equal(t, "", clampString("   ", 100))
}
