// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminActionsColumns holds the columns for the "admin_actions" table.
	AdminActionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "actor_email", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "target", Type: field.TypeString, Nullable: true},
		{Name: "detail", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminActionsTable holds the schema information for the "admin_actions" table.
	AdminActionsTable = &schema.Table{
		Name:       "admin_actions",
		Columns:    AdminActionsColumns,
		PrimaryKey: []*schema.Column{AdminActionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "adminaction_actor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AdminActionsColumns[1], AdminActionsColumns[6]},
			},
			{
				Name:    "adminaction_action",
				Unique:  false,
				Columns: []*schema.Column{AdminActionsColumns[3]},
			},
		},
	}
	// AnalytesColumns holds the columns for the "analytes" table.
	AnalytesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnalytesTable holds the schema information for the "analytes" table.
	AnalytesTable = &schema.Table{
		Name:       "analytes",
		Columns:    AnalytesColumns,
		PrimaryKey: []*schema.Column{AnalytesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analyte_code",
				Unique:  true,
				Columns: []*schema.Column{AnalytesColumns[1]},
			},
		},
	}
	// AnalyteAliasColumns holds the columns for the "analyte_alias" table.
	AnalyteAliasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "normalized", Type: field.TypeString},
		{Name: "display", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"seed", "approval", "manual", "llm_evidence"}, Default: "seed"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analyte_id", Type: field.TypeUUID},
	}
	// AnalyteAliasTable holds the schema information for the "analyte_alias" table.
	AnalyteAliasTable = &schema.Table{
		Name:       "analyte_alias",
		Columns:    AnalyteAliasColumns,
		PrimaryKey: []*schema.Column{AnalyteAliasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analyte_alias_analytes_aliases",
				Columns:    []*schema.Column{AnalyteAliasColumns[7]},
				RefColumns: []*schema.Column{AnalytesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analytealias_analyte_id_normalized",
				Unique:  true,
				Columns: []*schema.Column{AnalyteAliasColumns[7], AnalyteAliasColumns[1]},
			},
			{
				Name:    "analytealias_normalized",
				Unique:  false,
				Columns: []*schema.Column{AnalyteAliasColumns[1]},
			},
		},
	}
	// LabResultsColumns holds the columns for the "lab_results" table.
	LabResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "parameter_name", Type: field.TypeString},
		{Name: "value_numeric", Type: field.TypeFloat64, Nullable: true},
		{Name: "value_text", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "reference_low", Type: field.TypeFloat64, Nullable: true},
		{Name: "reference_high", Type: field.TypeFloat64, Nullable: true},
		{Name: "reference_text", Type: field.TypeString, Nullable: true},
		{Name: "out_of_range", Type: field.TypeEnum, Enums: []string{"above", "below", "within", "flagged_by_lab", "unknown"}, Default: "unknown"},
		{Name: "mapping_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "mapping_source", Type: field.TypeEnum, Nullable: true, Enums: []string{"alias_exact", "fuzzy_auto", "llm_auto", "manual_resolved", "pending_approved", "manual_approved"}},
		{Name: "mapped_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analyte_id", Type: field.TypeUUID, Nullable: true},
		{Name: "report_id", Type: field.TypeUUID},
	}
	// LabResultsTable holds the schema information for the "lab_results" table.
	LabResultsTable = &schema.Table{
		Name:       "lab_results",
		Columns:    LabResultsColumns,
		PrimaryKey: []*schema.Column{LabResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lab_results_analytes_results",
				Columns:    []*schema.Column{LabResultsColumns[15]},
				RefColumns: []*schema.Column{AnalytesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "lab_results_reports_results",
				Columns:    []*schema.Column{LabResultsColumns[16]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "labresult_report_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[16]},
			},
			{
				Name:    "labresult_user_id_analyte_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[1], LabResultsColumns[15]},
			},
			{
				Name:    "labresult_patient_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[2]},
			},
			{
				Name:    "labresult_parameter_name",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[3]},
			},
		},
	}
	// MatchReviewsColumns holds the columns for the "match_reviews" table.
	MatchReviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "result_id", Type: field.TypeUUID},
		{Name: "parameter_name", Type: field.TypeString},
		{Name: "candidates", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "skipped"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// MatchReviewsTable holds the schema information for the "match_reviews" table.
	MatchReviewsTable = &schema.Table{
		Name:       "match_reviews",
		Columns:    MatchReviewsColumns,
		PrimaryKey: []*schema.Column{MatchReviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "matchreview_status",
				Unique:  false,
				Columns: []*schema.Column{MatchReviewsColumns[4]},
			},
			{
				Name:    "matchreview_result_id",
				Unique:  false,
				Columns: []*schema.Column{MatchReviewsColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "full_name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "last_report_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id_normalized_name",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[5], PatientsColumns[2]},
			},
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[5]},
			},
		},
	}
	// PendingAnalytesColumns holds the columns for the "pending_analytes" table.
	PendingAnalytesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "proposed_code", Type: field.TypeString},
		{Name: "proposed_name", Type: field.TypeString},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "variations", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "discarded"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// PendingAnalytesTable holds the schema information for the "pending_analytes" table.
	PendingAnalytesTable = &schema.Table{
		Name:       "pending_analytes",
		Columns:    PendingAnalytesColumns,
		PrimaryKey: []*schema.Column{PendingAnalytesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendinganalyte_status",
				Unique:  false,
				Columns: []*schema.Column{PendingAnalytesColumns[5]},
			},
			{
				Name:    "pendinganalyte_proposed_code",
				Unique:  false,
				Columns: []*schema.Column{PendingAnalytesColumns[1]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "checksum", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_output", Type: field.TypeJSON, Nullable: true},
		{Name: "test_date_text", Type: field.TypeString, Nullable: true},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true},
		{Name: "patient_name_snapshot", Type: field.TypeString, Nullable: true},
		{Name: "lab_name", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "recognized_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_patients_reports",
				Columns:    []*schema.Column{ReportsColumns[16]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "reports_users_reports",
				Columns:    []*schema.Column{ReportsColumns[17]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "report_patient_id_checksum",
				Unique:  true,
				Columns: []*schema.Column{ReportsColumns[16], ReportsColumns[4]},
			},
			{
				Name:    "report_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[17], ReportsColumns[14]},
			},
			{
				Name:    "report_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "api_token", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminActionsTable,
		AnalytesTable,
		AnalyteAliasTable,
		LabResultsTable,
		MatchReviewsTable,
		PatientsTable,
		PendingAnalytesTable,
		ReportsTable,
		UsersTable,
	}
)

func init() {
	AnalyteAliasTable.ForeignKeys[0].RefTable = AnalytesTable
	LabResultsTable.ForeignKeys[0].RefTable = AnalytesTable
	LabResultsTable.ForeignKeys[1].RefTable = ReportsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	ReportsTable.ForeignKeys[0].RefTable = PatientsTable
	ReportsTable.ForeignKeys[1].RefTable = UsersTable
}
