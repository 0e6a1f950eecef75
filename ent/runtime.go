// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/adminaction"
	"github.com/labtrail/labtrail/ent/analyte"
	"github.com/labtrail/labtrail/ent/analytealias"
	"github.com/labtrail/labtrail/ent/labresult"
	"github.com/labtrail/labtrail/ent/matchreview"
	"github.com/labtrail/labtrail/ent/patient"
	"github.com/labtrail/labtrail/ent/pendinganalyte"
	"github.com/labtrail/labtrail/ent/report"
	"github.com/labtrail/labtrail/ent/schema"
	"github.com/labtrail/labtrail/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminactionFields := schema.AdminAction{}.Fields()
	_ = adminactionFields
	// adminactionDescCreatedAt is the schema descriptor for created_at field.
	adminactionDescCreatedAt := adminactionFields[6].Descriptor()
	// adminaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminaction.DefaultCreatedAt = adminactionDescCreatedAt.Default.(func() time.Time)
	// adminactionDescID is the schema descriptor for id field.
	adminactionDescID := adminactionFields[0].Descriptor()
	// adminaction.DefaultID holds the default value on creation for the id field.
	adminaction.DefaultID = adminactionDescID.Default.(func() uuid.UUID)
	analyteFields := schema.Analyte{}.Fields()
	_ = analyteFields
	// analyteDescCreatedAt is the schema descriptor for created_at field.
	analyteDescCreatedAt := analyteFields[3].Descriptor()
	// analyte.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyte.DefaultCreatedAt = analyteDescCreatedAt.Default.(func() time.Time)
	// analyteDescID is the schema descriptor for id field.
	analyteDescID := analyteFields[0].Descriptor()
	// analyte.DefaultID holds the default value on creation for the id field.
	analyte.DefaultID = analyteDescID.Default.(func() uuid.UUID)
	analytealiasFields := schema.AnalyteAlias{}.Fields()
	_ = analytealiasFields
	// analytealiasDescLanguage is the schema descriptor for language field.
	analytealiasDescLanguage := analytealiasFields[4].Descriptor()
	// analytealias.DefaultLanguage holds the default value on creation for the language field.
	analytealias.DefaultLanguage = analytealiasDescLanguage.Default.(string)
	// analytealiasDescConfidence is the schema descriptor for confidence field.
	analytealiasDescConfidence := analytealiasFields[5].Descriptor()
	// analytealias.DefaultConfidence holds the default value on creation for the confidence field.
	analytealias.DefaultConfidence = analytealiasDescConfidence.Default.(float64)
	// analytealiasDescCreatedAt is the schema descriptor for created_at field.
	analytealiasDescCreatedAt := analytealiasFields[7].Descriptor()
	// analytealias.DefaultCreatedAt holds the default value on creation for the created_at field.
	analytealias.DefaultCreatedAt = analytealiasDescCreatedAt.Default.(func() time.Time)
	// analytealiasDescID is the schema descriptor for id field.
	analytealiasDescID := analytealiasFields[0].Descriptor()
	// analytealias.DefaultID holds the default value on creation for the id field.
	analytealias.DefaultID = analytealiasDescID.Default.(func() uuid.UUID)
	labresultFields := schema.LabResult{}.Fields()
	_ = labresultFields
	// labresultDescCreatedAt is the schema descriptor for created_at field.
	labresultDescCreatedAt := labresultFields[16].Descriptor()
	// labresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	labresult.DefaultCreatedAt = labresultDescCreatedAt.Default.(func() time.Time)
	// labresultDescID is the schema descriptor for id field.
	labresultDescID := labresultFields[0].Descriptor()
	// labresult.DefaultID holds the default value on creation for the id field.
	labresult.DefaultID = labresultDescID.Default.(func() uuid.UUID)
	matchreviewFields := schema.MatchReview{}.Fields()
	_ = matchreviewFields
	// matchreviewDescCreatedAt is the schema descriptor for created_at field.
	matchreviewDescCreatedAt := matchreviewFields[5].Descriptor()
	// matchreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	matchreview.DefaultCreatedAt = matchreviewDescCreatedAt.Default.(func() time.Time)
	// matchreviewDescID is the schema descriptor for id field.
	matchreviewDescID := matchreviewFields[0].Descriptor()
	// matchreview.DefaultID holds the default value on creation for the id field.
	matchreview.DefaultID = matchreviewDescID.Default.(func() uuid.UUID)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[5].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientFields[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	pendinganalyteFields := schema.PendingAnalyte{}.Fields()
	_ = pendinganalyteFields
	// pendinganalyteDescCreatedAt is the schema descriptor for created_at field.
	pendinganalyteDescCreatedAt := pendinganalyteFields[6].Descriptor()
	// pendinganalyte.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendinganalyte.DefaultCreatedAt = pendinganalyteDescCreatedAt.Default.(func() time.Time)
	// pendinganalyteDescID is the schema descriptor for id field.
	pendinganalyteDescID := pendinganalyteFields[0].Descriptor()
	// pendinganalyte.DefaultID holds the default value on creation for the id field.
	pendinganalyte.DefaultID = pendinganalyteDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[16].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[17].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[3].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescAPIToken is the schema descriptor for api_token field.
	userDescAPIToken := userFields[4].Descriptor()
	// user.DefaultAPIToken holds the default value on creation for the api_token field.
	user.DefaultAPIToken = userDescAPIToken.Default.(func() string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
