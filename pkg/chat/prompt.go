package chat

import (
	"fmt"
	"strings"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/models"
)

// BuildSystemPrompt assembles the session's system prompt from the schema
// snapshot, the selected-patient binding, and an optional onboarding block.
// It is built once per session, on the first turn.
func BuildSystemPrompt(schemaManifest []byte, selectedPatient *ent.Patient, patientCount int, onboarding *models.OnboardingContext) string {
	var b strings.Builder

	b.WriteString(`You are a careful assistant for exploring a personal lab-test database. You answer questions about lab results by querying the database with the execute_sql tool and presenting findings with show_plot and show_table. Use fuzzy_search when unsure of exact parameter or analyte names.

Rules:
- Query before you answer; never invent values.
- Use single read-only SELECT or WITH statements.
- Dates in the database are ISO 8601.
- You are not a doctor: describe trends and reference ranges, recommend consulting a professional for interpretation.
`)

	b.WriteString("\nDatabase schema:\n")
	b.Write(schemaManifest)

	if selectedPatient != nil {
		fmt.Fprintf(&b, "\nThe conversation is about patient %q (patient_id = '%s').", selectedPatient.FullName, selectedPatient.ID)
		if patientCount > 1 {
			fmt.Fprintf(&b, " Every query MUST filter patient_id = '%s'; queries touching other patients are rejected.", selectedPatient.ID)
		}
		b.WriteString("\n")
	}

	if onboarding != nil {
		b.WriteString("\nThe user just finished uploading lab reports")
		if onboarding.ReportCount > 0 {
			fmt.Fprintf(&b, " (%d report(s)", onboarding.ReportCount)
			if onboarding.PatientName != "" {
				fmt.Fprintf(&b, " for %s", onboarding.PatientName)
			}
			b.WriteString(")")
		}
		b.WriteString(".\n")
		if ins := onboarding.Insight; ins != nil {
			b.WriteString("An initial review produced:\n")
			fmt.Fprintf(&b, "- Finding: %s\n- Action: %s\n- Tracking: %s\n", ins.Finding, ins.Action, ins.Tracking)
			if len(ins.FollowUps) > 0 {
				b.WriteString("Suggested follow-up questions: " + strings.Join(ins.FollowUps, "; ") + "\n")
			}
			if ins.Language != "" {
				fmt.Fprintf(&b, "Respond in the same language as the reports (%s) unless asked otherwise.\n", ins.Language)
			}
		}
		if onboarding.ValuesTable != "" {
			b.WriteString("Values just loaded:\n")
			b.WriteString(onboarding.ValuesTable)
			b.WriteString("\n")
		}
		b.WriteString("Open the conversation by walking the user through these results.\n")
	}

	return b.String()
}
