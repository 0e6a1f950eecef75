package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/services"
	testdb "github.com/labtrail/labtrail/test/database"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }

func registerUser(t *testing.T, users *services.UserService, email string) *ent.User {
	t.Helper()
	u, created, err := users.Register(context.Background(), services.RegisterInput{
		Email:       email,
		DisplayName: "Test User",
	})
	require.NoError(t, err)
	require.True(t, created)
	return u
}

func sampleExtraction() *models.Extraction {
	return &models.Extraction{
		PatientName: "Jane Doe",
		TestDate:    "2025-11-03",
		LabName:     "Central Lab",
		Results: []models.ExtractionRow{
			{
				ParameterName: "Hemoglobin",
				ValueNumeric:  floatPtr(14.2),
				Unit:          strPtr("g/dL"),
				ReferenceLow:  floatPtr(13.5),
				ReferenceHigh: floatPtr(17.5),
				OutOfRange:    models.RangeWithin,
			},
			{
				ParameterName: "CRP",
				ValueNumeric:  floatPtr(12),
				Unit:          strPtr("mg/L"),
				ReferenceHigh: floatPtr(5),
				OutOfRange:    models.RangeAbove,
			},
			{
				ParameterName: "Blood group",
				ValueText:     strPtr("A+"),
				OutOfRange:    models.RangeUnknown,
			},
		},
		Summary: models.ExtractionStats{TotalParameters: 3, OutOfRangeCount: 1},
	}
}

func persistInput(userID uuid.UUID, checksum string) services.PersistExtractionInput {
	effective := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	return services.PersistExtractionInput{
		UserID:        userID,
		Filename:      "report.pdf",
		MimeType:      "application/pdf",
		StoragePath:   "ab/cd/" + checksum,
		Checksum:      checksum,
		ModelName:     "vision-model",
		Extraction:    sampleExtraction(),
		RawOutput:     map[string]any{"patient_name": "Jane Doe"},
		EffectiveDate: &effective,
		RecognizedAt:  time.Now(),
	}
}

func TestRegisterAndGetByToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	u := registerUser(t, users, "jane@example.com")
	require.NotEmpty(t, u.APIToken)

	// Registering the same address again returns the existing account.
	again, created, err := users.Register(ctx, services.RegisterInput{Email: "Jane@Example.com "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)

	resolved, err := users.GetByToken(ctx, u.APIToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)

	_, err = users.GetByToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = users.GetByToken(ctx, "")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestPersistExtractionRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	reports := services.NewReportService(client.Client)
	patients := services.NewPatientService(client.Client)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	u := registerUser(t, users, "jane@example.com")

	rep, duplicate, err := reports.PersistExtraction(ctx, persistInput(u.ID, "checksum-1"))
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Equal(t, report.StatusCompleted, rep.Status)
	assert.Equal(t, "Jane Doe", rep.PatientNameSnapshot)
	require.NotNil(t, rep.EffectiveDate)

	// The patient was created as a side effect, with its activity touched.
	list, err := patients.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0].FullName)
	assert.NotNil(t, list[0].LastReportAt)

	results, err := client.LabResult.Query().
		Where(labresult.ReportIDEQ(rep.ID)).
		Order(ent.Asc(labresult.FieldParameterName)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Blood group", results[0].ParameterName)
	assert.Equal(t, "A+", results[0].ValueText)
	require.NotNil(t, results[1].ValueNumeric)
	assert.InDelta(t, 12, *results[1].ValueNumeric, 0.001)
	assert.Equal(t, labresult.OutOfRangeAbove, results[1].OutOfRange)
	assert.Nil(t, results[1].AnalyteID, "results start unmapped")
}

func TestPersistExtractionDeduplicates(t *testing.T) {
	client := testdb.NewTestClient(t)
	reports := services.NewReportService(client.Client)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	u := registerUser(t, users, "jane@example.com")

	first, duplicate, err := reports.PersistExtraction(ctx, persistInput(u.ID, "checksum-1"))
	require.NoError(t, err)
	require.False(t, duplicate)

	// Same bytes for the same patient: nothing new is written.
	second, duplicate, err := reports.PersistExtraction(ctx, persistInput(u.ID, "checksum-1"))
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The same bytes under a different patient are a distinct report.
	other := persistInput(u.ID, "checksum-1")
	other.Extraction.PatientName = "John Doe"
	third, duplicate, err := reports.PersistExtraction(ctx, other)
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.NotEqual(t, first.ID, third.ID)
}

func TestFindDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	reports := services.NewReportService(client.Client)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	u := registerUser(t, users, "jane@example.com")

	// Unknown patient name: cannot be a duplicate.
	got, err := reports.FindDuplicate(ctx, u.ID, "Jane Doe", "checksum-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	rep, _, err := reports.PersistExtraction(ctx, persistInput(u.ID, "checksum-1"))
	require.NoError(t, err)

	// Name matching is normalization-based, not byte-exact.
	got, err = reports.FindDuplicate(ctx, u.ID, "  JANE   doe ", "checksum-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rep.ID, got.ID)

	got, err = reports.FindDuplicate(ctx, u.ID, "Jane Doe", "other-checksum")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetEnforcesOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	reports := services.NewReportService(client.Client)
	users := services.NewUserService(client.Client)
	ctx := context.Background()

	owner := registerUser(t, users, "owner@example.com")
	stranger := registerUser(t, users, "stranger@example.com")

	rep, _, err := reports.PersistExtraction(ctx, persistInput(owner.ID, "checksum-1"))
	require.NoError(t, err)

	got, err := reports.Get(ctx, owner.ID, rep.ID, false)
	require.NoError(t, err)
	assert.Len(t, got.Edges.Results, 3)

	_, err = reports.Get(ctx, stranger.ID, rep.ID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Admin mode reads across owners.
	got, err = reports.Get(ctx, stranger.ID, rep.ID, true)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
}
