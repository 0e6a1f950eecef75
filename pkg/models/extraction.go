package models

// Out-of-range verdicts derived per result row.
const (
	RangeAbove        = "above"
	RangeBelow        = "below"
	RangeWithin       = "within"
	RangeFlaggedByLab = "flagged_by_lab"
	RangeUnknown      = "unknown"
)

// Extraction is the structured object the vision provider must return for
// one lab report. Every property is required on the wire; absent values come
// back as explicit nulls so the sanitizer can tell "missing" from "empty".
type Extraction struct {
	PatientName string          `json:"patient_name" jsonschema:"description=Full patient name exactly as printed"`
	TestDate    string          `json:"test_date" jsonschema:"description=Collection or test date as printed, empty when absent"`
	LabName     string          `json:"lab_name" jsonschema:"description=Issuing laboratory, empty when absent"`
	Results     []ExtractionRow `json:"results"`
	Summary     ExtractionStats `json:"summary"`
}

// ExtractionRow is one measured parameter. Numeric fields use anyOf-null so
// textual results ("negative", "++") survive without coercion.
type ExtractionRow struct {
	ParameterName string   `json:"parameter_name" jsonschema:"description=Raw parameter name as printed"`
	ValueNumeric  *float64 `json:"value_numeric" jsonschema:"description=Numeric result, null when the result is textual"`
	ValueText     *string  `json:"value_text" jsonschema:"description=Textual result, null when numeric"`
	Unit          *string  `json:"unit"`
	ReferenceLow  *float64 `json:"reference_low"`
	ReferenceHigh *float64 `json:"reference_high"`
	ReferenceText *string  `json:"reference_text" jsonschema:"description=Reference interval as printed when not a plain low-high pair"`
	OutOfRange    string   `json:"out_of_range" jsonschema:"enum=above,enum=below,enum=within,enum=flagged_by_lab,enum=unknown"`
}

// ExtractionStats are recomputed from the rows by the sanitizer; the model's
// own counts are advisory only.
type ExtractionStats struct {
	TotalParameters int `json:"total_parameters"`
	OutOfRangeCount int `json:"out_of_range_count"`
}
