package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/ent"
)

func floatPtr(v float64) *float64 { return &v }

func reportWithResults(date time.Time, results ...*ent.LabResult) *ent.Report {
	r := &ent.Report{EffectiveDate: &date}
	r.Edges.Results = results
	return r
}

func TestValuesTableRendering(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	table := ValuesTable([]*ent.Report{
		reportWithResults(date,
			&ent.LabResult{
				ParameterName: "Hemoglobin",
				ValueNumeric:  floatPtr(14.20),
				Unit:          "g/dL",
				ReferenceLow:  floatPtr(13.5),
				ReferenceHigh: floatPtr(17.5),
				OutOfRange:    "within",
			},
			&ent.LabResult{
				ParameterName: "CRP",
				ValueNumeric:  floatPtr(12),
				Unit:          "mg/L",
				ReferenceHigh: floatPtr(5),
				OutOfRange:    "above",
			},
			&ent.LabResult{
				ParameterName: "Blood group",
				ValueText:     "A+",
				OutOfRange:    "unknown",
			},
		),
	})

	lines := strings.Split(strings.TrimSpace(table), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "| Date | Parameter | Value | Unit | Reference | Flag |", lines[0])
	assert.Equal(t, "| 2025-11-03 | Hemoglobin | 14.2 | g/dL | 13.5–17.5 |  |", lines[2])
	assert.Equal(t, "| 2025-11-03 | CRP | 12 | mg/L | ≤ 5 | high |", lines[3])
	assert.Equal(t, "| 2025-11-03 | Blood group | A+ |  |  |  |", lines[4])
}

func TestValuesTableFlags(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	table := ValuesTable([]*ent.Report{
		reportWithResults(date,
			&ent.LabResult{ParameterName: "A", ValueNumeric: floatPtr(1), OutOfRange: "below"},
			&ent.LabResult{ParameterName: "B", ValueText: "pos", OutOfRange: "flagged_by_lab"},
		),
	})
	assert.Contains(t, table, "| low |")
	assert.Contains(t, table, "| flagged |")
}

func TestValuesTableEscapesPipes(t *testing.T) {
	table := ValuesTable([]*ent.Report{
		reportWithResults(time.Now(),
			&ent.LabResult{ParameterName: "Na|K ratio", ValueText: "1|2", OutOfRange: "unknown"},
		),
	})
	assert.Contains(t, table, `Na\|K ratio`)
	assert.Contains(t, table, `1\|2`)
}

func TestValuesTableMissingDate(t *testing.T) {
	report := &ent.Report{}
	report.Edges.Results = []*ent.LabResult{
		{ParameterName: "Hb", ValueNumeric: floatPtr(14), OutOfRange: "within"},
	}
	table := ValuesTable([]*ent.Report{report})
	assert.Contains(t, table, "|  | Hb |")
}

func TestValuesTableTruncation(t *testing.T) {
	date := time.Now()
	results := make([]*ent.LabResult, maxTableRows+15)
	for i := range results {
		results[i] = &ent.LabResult{ParameterName: "P", ValueNumeric: floatPtr(1), OutOfRange: "within"}
	}
	table := ValuesTable([]*ent.Report{reportWithResults(date, results...)})

	assert.Contains(t, table, "(15 more values omitted)")
	// header + separator + capped rows + blank + omission note
	assert.Equal(t, maxTableRows+2, strings.Count(table, "|\n"))
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "14.2", trimFloat(14.20))
	assert.Equal(t, "12", trimFloat(12.004))
	assert.Equal(t, "0.35", trimFloat(0.35))
}
