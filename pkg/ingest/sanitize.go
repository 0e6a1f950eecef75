package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/labtrail/labtrail/pkg/models"
)

// Clamp lengths for model-supplied strings. Vision output is adversarial by
// accident: a misread page can smear kilobytes into one field.
const (
	maxNameLength  = 300
	maxValueLength = 200
	maxFieldLength = 500
)

var validOutOfRange = map[string]bool{
	models.RangeAbove:        true,
	models.RangeBelow:        true,
	models.RangeWithin:       true,
	models.RangeFlaggedByLab: true,
	models.RangeUnknown:      true,
}

// Sanitize coerces the provider's raw JSON into canonical extraction shape.
// It never trusts the model: strings are whitespace-normalized and clamped,
// enums constrained, numerics coerced from numeric-looking text, rows
// without a parameter name dropped, and the summary recomputed from the
// rows. An extraction without any usable row is an error.
func Sanitize(raw json.RawMessage) (*models.Extraction, error) {
	var extraction models.Extraction
	if err := json.Unmarshal(raw, &extraction); err != nil {
		return nil, fmt.Errorf("model output is not valid extraction JSON: %w", err)
	}

	extraction.PatientName = clampString(extraction.PatientName, maxNameLength)
	extraction.TestDate = clampString(extraction.TestDate, maxFieldLength)
	extraction.LabName = clampString(extraction.LabName, maxNameLength)

	rows := extraction.Results[:0]
	for _, row := range extraction.Results {
		row.ParameterName = clampString(row.ParameterName, maxNameLength)
		if row.ParameterName == "" {
			continue
		}
		sanitizeRow(&row)
		rows = append(rows, row)
	}
	extraction.Results = rows

	if len(extraction.Results) == 0 {
		return nil, fmt.Errorf("extraction carries no usable result rows")
	}

	extraction.Summary = recomputeStats(extraction.Results)
	return &extraction, nil
}

func sanitizeRow(row *models.ExtractionRow) {
	row.ValueText = clampOptional(row.ValueText, maxValueLength)
	row.Unit = clampOptional(row.Unit, maxValueLength)
	row.ReferenceText = clampOptional(row.ReferenceText, maxFieldLength)

	// Numeric-looking textual results are promoted so range math works.
	if row.ValueNumeric == nil && row.ValueText != nil {
		if v, ok := parseLooseFloat(*row.ValueText); ok {
			row.ValueNumeric = &v
			row.ValueText = nil
		}
	}

	if !validOutOfRange[row.OutOfRange] {
		row.OutOfRange = models.RangeUnknown
	}
	if row.OutOfRange == models.RangeUnknown {
		row.OutOfRange = deriveOutOfRange(row)
	}
}

// deriveOutOfRange recomputes the verdict from the numeric value and the
// reference interval when the model left it unknown.
func deriveOutOfRange(row *models.ExtractionRow) string {
	if row.ValueNumeric == nil {
		return models.RangeUnknown
	}
	v := *row.ValueNumeric
	switch {
	case row.ReferenceHigh != nil && v > *row.ReferenceHigh:
		return models.RangeAbove
	case row.ReferenceLow != nil && v < *row.ReferenceLow:
		return models.RangeBelow
	case row.ReferenceLow != nil || row.ReferenceHigh != nil:
		return models.RangeWithin
	default:
		return models.RangeUnknown
	}
}

func recomputeStats(rows []models.ExtractionRow) models.ExtractionStats {
	stats := models.ExtractionStats{TotalParameters: len(rows)}
	for _, row := range rows {
		switch row.OutOfRange {
		case models.RangeAbove, models.RangeBelow, models.RangeFlaggedByLab:
			stats.OutOfRangeCount++
		}
	}
	return stats
}

// clampString collapses whitespace runs and truncates on a rune boundary.
func clampString(s string, max int) string {
	collapsed := strings.Join(strings.Fields(s), " ")
	runes := []rune(collapsed)
	if len(runes) > max {
		return string(runes[:max])
	}
	return collapsed
}

func clampOptional(s *string, max int) *string {
	if s == nil {
		return nil
	}
	c := clampString(*s, max)
	if c == "" {
		return nil
	}
	return &c
}

// parseLooseFloat accepts decimal-comma values and embedded thousands
// separators common on European reports.
func parseLooseFloat(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
