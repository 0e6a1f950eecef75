// Package insight produces the one-shot onboarding summary after an
// ingestion batch: three typed findings plus follow-up suggestions, handed
// to the next chat session as its onboarding context.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/services"
)

const (
	// maxReports caps how much of a batch feeds one insight call.
	maxReports = 20
	// maxTableRows keeps the markdown values table compact.
	maxTableRows = 60

	insightMaxTokens = 2048
)

const insightSystemPrompt = `You are a careful medical data summarizer. Given a patient's recent lab results, produce:
- finding: the single most notable observation across the results (out-of-range values first),
- action: one concrete, conservative next step,
- tracking: which parameter is worth watching over time and why,
- follow_ups: 2 to 4 short questions the patient could ask next,
- language: the BCP-47 tag of the language the lab report data is written in.
Write finding, action, tracking, and follow_ups in that same language. Do not diagnose; recommend professional consultation where appropriate.`

// Generator builds onboarding insights with a structured LLM call.
type Generator struct {
	llm     llm.Client
	reports *services.ReportService
	model   string
}

func NewGenerator(client llm.Client, reports *services.ReportService, model string) *Generator {
	return &Generator{llm: client, reports: reports, model: model}
}

// Generate summarizes the patient's most recent reports. A failed LLM call
// degrades to a context without an insight; onboarding is best-effort and
// must never fail the ingestion flow.
func (g *Generator) Generate(ctx context.Context, userID uuid.UUID, patient *ent.Patient) (*models.OnboardingContext, error) {
	reports, err := g.reports.RecentByPatient(ctx, userID, patient.ID, maxReports)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}

	table := ValuesTable(reports)
	out := &models.OnboardingContext{
		ValuesTable: table,
		PatientName: patient.FullName,
		ReportCount: len(reports),
	}

	schema, err := llm.SchemaFor[models.Insight]()
	if err != nil {
		return nil, fmt.Errorf("failed to build insight schema: %w", err)
	}

	var insight models.Insight
	err = g.llm.Structured(ctx, &llm.StructuredInput{
		Model:        g.model,
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   fmt.Sprintf("Patient: %s\n\nRecent lab results:\n\n%s", patient.FullName, table),
		SchemaName:   "onboarding_insight",
		Schema:       schema,
		MaxTokens:    insightMaxTokens,
	}, &insight)
	if err != nil {
		slog.Warn("Insight generation failed, continuing without one",
			"patient_id", patient.ID, "error", err)
		return out, nil
	}
	out.Insight = &insight
	return out, nil
}

// ValuesTable renders reports as a compact markdown table, newest first.
func ValuesTable(reports []*ent.Report) string {
	var b strings.Builder
	b.WriteString("| Date | Parameter | Value | Unit | Reference | Flag |\n")
	b.WriteString("|---|---|---|---|---|---|\n")

	rows := 0
	for _, rep := range reports {
		date := ""
		if rep.EffectiveDate != nil {
			date = rep.EffectiveDate.Format(time.DateOnly)
		}
		for _, res := range rep.Edges.Results {
			if rows >= maxTableRows {
				b.WriteString(fmt.Sprintf("\n(%d more values omitted)\n", remaining(reports, rows)))
				return b.String()
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				date,
				escapeCell(res.ParameterName),
				formatValue(res),
				escapeCell(res.Unit),
				formatReference(res),
				flag(res),
			)
			rows++
		}
	}
	return b.String()
}

func formatValue(res *ent.LabResult) string {
	if res.ValueNumeric != nil {
		return trimFloat(*res.ValueNumeric)
	}
	return escapeCell(res.ValueText)
}

func formatReference(res *ent.LabResult) string {
	switch {
	case res.ReferenceLow != nil && res.ReferenceHigh != nil:
		return trimFloat(*res.ReferenceLow) + "–" + trimFloat(*res.ReferenceHigh)
	case res.ReferenceLow != nil:
		return "≥ " + trimFloat(*res.ReferenceLow)
	case res.ReferenceHigh != nil:
		return "≤ " + trimFloat(*res.ReferenceHigh)
	default:
		return escapeCell(res.ReferenceText)
	}
}

func flag(res *ent.LabResult) string {
	switch res.OutOfRange {
	case "above":
		return "high"
	case "below":
		return "low"
	case "flagged_by_lab":
		return "flagged"
	default:
		return ""
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func remaining(reports []*ent.Report, shown int) int {
	total := 0
	for _, rep := range reports {
		total += len(rep.Edges.Results)
	}
	return total - shown
}
