// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labtrail/labtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUserID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilename, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldMimeType, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStoragePath, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldChecksum, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldErrorMessage, v))
}

// TestDateText applies equality check predicate on the "test_date_text" field. It's identical to TestDateTextEQ.
func TestDateText(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTestDateText, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldEffectiveDate, v))
}

// PatientNameSnapshot applies equality check predicate on the "patient_name_snapshot" field. It's identical to PatientNameSnapshotEQ.
func PatientNameSnapshot(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientNameSnapshot, v))
}

// LabName applies equality check predicate on the "lab_name" field. It's identical to LabNameEQ.
func LabName(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLabName, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldModelName, v))
}

// RecognizedAt applies equality check predicate on the "recognized_at" field. It's identical to RecognizedAtEQ.
func RecognizedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRecognizedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUserID, vs...))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPatientID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldFilename, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldMimeType, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldStoragePath, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldChecksum, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RawOutputIsNil applies the IsNil predicate on the "raw_output" field.
func RawOutputIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldRawOutput))
}

// RawOutputNotNil applies the NotNil predicate on the "raw_output" field.
func RawOutputNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldRawOutput))
}

// TestDateTextEQ applies the EQ predicate on the "test_date_text" field.
func TestDateTextEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTestDateText, v))
}

// TestDateTextNEQ applies the NEQ predicate on the "test_date_text" field.
func TestDateTextNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTestDateText, v))
}

// TestDateTextIn applies the In predicate on the "test_date_text" field.
func TestDateTextIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTestDateText, vs...))
}

// TestDateTextNotIn applies the NotIn predicate on the "test_date_text" field.
func TestDateTextNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTestDateText, vs...))
}

// TestDateTextGT applies the GT predicate on the "test_date_text" field.
func TestDateTextGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTestDateText, v))
}

// TestDateTextGTE applies the GTE predicate on the "test_date_text" field.
func TestDateTextGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTestDateText, v))
}

// TestDateTextLT applies the LT predicate on the "test_date_text" field.
func TestDateTextLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTestDateText, v))
}

// TestDateTextLTE applies the LTE predicate on the "test_date_text" field.
func TestDateTextLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTestDateText, v))
}

// TestDateTextContains applies the Contains predicate on the "test_date_text" field.
func TestDateTextContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTestDateText, v))
}

// TestDateTextHasPrefix applies the HasPrefix predicate on the "test_date_text" field.
func TestDateTextHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTestDateText, v))
}

// TestDateTextHasSuffix applies the HasSuffix predicate on the "test_date_text" field.
func TestDateTextHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTestDateText, v))
}

// TestDateTextIsNil applies the IsNil predicate on the "test_date_text" field.
func TestDateTextIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldTestDateText))
}

// TestDateTextNotNil applies the NotNil predicate on the "test_date_text" field.
func TestDateTextNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldTestDateText))
}

// TestDateTextEqualFold applies the EqualFold predicate on the "test_date_text" field.
func TestDateTextEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTestDateText, v))
}

// TestDateTextContainsFold applies the ContainsFold predicate on the "test_date_text" field.
func TestDateTextContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTestDateText, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldEffectiveDate))
}

// PatientNameSnapshotEQ applies the EQ predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotNEQ applies the NEQ predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotIn applies the In predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldPatientNameSnapshot, vs...))
}

// PatientNameSnapshotNotIn applies the NotIn predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldPatientNameSnapshot, vs...))
}

// PatientNameSnapshotGT applies the GT predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotGTE applies the GTE predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotLT applies the LT predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotLTE applies the LTE predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotContains applies the Contains predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotHasPrefix applies the HasPrefix predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotHasSuffix applies the HasSuffix predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotIsNil applies the IsNil predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldPatientNameSnapshot))
}

// PatientNameSnapshotNotNil applies the NotNil predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldPatientNameSnapshot))
}

// PatientNameSnapshotEqualFold applies the EqualFold predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldPatientNameSnapshot, v))
}

// PatientNameSnapshotContainsFold applies the ContainsFold predicate on the "patient_name_snapshot" field.
func PatientNameSnapshotContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldPatientNameSnapshot, v))
}

// LabNameEQ applies the EQ predicate on the "lab_name" field.
func LabNameEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldLabName, v))
}

// LabNameNEQ applies the NEQ predicate on the "lab_name" field.
func LabNameNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldLabName, v))
}

// LabNameIn applies the In predicate on the "lab_name" field.
func LabNameIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldLabName, vs...))
}

// LabNameNotIn applies the NotIn predicate on the "lab_name" field.
func LabNameNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldLabName, vs...))
}

// LabNameGT applies the GT predicate on the "lab_name" field.
func LabNameGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldLabName, v))
}

// LabNameGTE applies the GTE predicate on the "lab_name" field.
func LabNameGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldLabName, v))
}

// LabNameLT applies the LT predicate on the "lab_name" field.
func LabNameLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldLabName, v))
}

// LabNameLTE applies the LTE predicate on the "lab_name" field.
func LabNameLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldLabName, v))
}

// LabNameContains applies the Contains predicate on the "lab_name" field.
func LabNameContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldLabName, v))
}

// LabNameHasPrefix applies the HasPrefix predicate on the "lab_name" field.
func LabNameHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldLabName, v))
}

// LabNameHasSuffix applies the HasSuffix predicate on the "lab_name" field.
func LabNameHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldLabName, v))
}

// LabNameIsNil applies the IsNil predicate on the "lab_name" field.
func LabNameIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldLabName))
}

// LabNameNotNil applies the NotNil predicate on the "lab_name" field.
func LabNameNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldLabName))
}

// LabNameEqualFold applies the EqualFold predicate on the "lab_name" field.
func LabNameEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldLabName, v))
}

// LabNameContainsFold applies the ContainsFold predicate on the "lab_name" field.
func LabNameContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldLabName, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldModelName, v))
}

// RecognizedAtEQ applies the EQ predicate on the "recognized_at" field.
func RecognizedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldRecognizedAt, v))
}

// RecognizedAtNEQ applies the NEQ predicate on the "recognized_at" field.
func RecognizedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldRecognizedAt, v))
}

// RecognizedAtIn applies the In predicate on the "recognized_at" field.
func RecognizedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldRecognizedAt, vs...))
}

// RecognizedAtNotIn applies the NotIn predicate on the "recognized_at" field.
func RecognizedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldRecognizedAt, vs...))
}

// RecognizedAtGT applies the GT predicate on the "recognized_at" field.
func RecognizedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldRecognizedAt, v))
}

// RecognizedAtGTE applies the GTE predicate on the "recognized_at" field.
func RecognizedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldRecognizedAt, v))
}

// RecognizedAtLT applies the LT predicate on the "recognized_at" field.
func RecognizedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldRecognizedAt, v))
}

// RecognizedAtLTE applies the LTE predicate on the "recognized_at" field.
func RecognizedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldRecognizedAt, v))
}

// RecognizedAtIsNil applies the IsNil predicate on the "recognized_at" field.
func RecognizedAtIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldRecognizedAt))
}

// RecognizedAtNotNil applies the NotNil predicate on the "recognized_at" field.
func RecognizedAtNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldRecognizedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.LabResult) predicate.Report {
	return predicate.Report(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
