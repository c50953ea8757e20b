// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiQueueEntriesColumns holds the columns for the "ai_queue_entries" table.
	AiQueueEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scan_id", Type: field.TypeString, Unique: true},
		{Name: "reservation_id", Type: field.TypeString},
		{Name: "ai_status", Type: field.TypeEnum, Enums: []string{"PENDING", "DOWNLOADED", "PROCESSING", "COMPLETED", "FAILED"}, Default: "PENDING"},
		{Name: "ai_input_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "ai_output_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "ai_total_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "ai_model", Type: field.TypeString, Nullable: true},
		{Name: "ai_processing_ms", Type: field.TypeInt64, Default: 0},
		{Name: "ai_processed_at", Type: field.TypeTime, Nullable: true},
	}
	// AiQueueEntriesTable holds the schema information for the "ai_queue_entries" table.
	AiQueueEntriesTable = &schema.Table{
		Name:       "ai_queue_entries",
		Columns:    AiQueueEntriesColumns,
		PrimaryKey: []*schema.Column{AiQueueEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "aiqueueentry_ai_status",
				Unique:  false,
				Columns: []*schema.Column{AiQueueEntriesColumns[5]},
			},
			{
				Name:    "aiqueueentry_ai_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AiQueueEntriesColumns[5], AiQueueEntriesColumns[1]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_resource_type_resource_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_actor",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
		},
	}
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "homepage_url", Type: field.TypeString},
		{Name: "wcag_level", Type: field.TypeEnum, Enums: []string{"A", "AA", "AAA"}, Default: "AA"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RUNNING", "COMPLETED", "FAILED", "CANCELLED", "STALE"}, Default: "PENDING"},
		{Name: "total_urls", Type: field.TypeInt},
		{Name: "completed_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "total_issues", Type: field.TypeInt, Default: 0},
		{Name: "critical_issues", Type: field.TypeInt, Default: 0},
		{Name: "serious_issues", Type: field.TypeInt, Default: 0},
		{Name: "moderate_issues", Type: field.TypeInt, Default: 0},
		{Name: "minor_issues", Type: field.TypeInt, Default: 0},
		{Name: "passed_checks", Type: field.TypeInt, Default: 0},
		{Name: "ai_enabled", Type: field.TypeBool, Default: false},
		{Name: "created_by", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_status",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[5]},
			},
			{
				Name:    "batch_created_by",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[16]},
			},
			{
				Name:    "batch_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[1]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "total_token_budget", Type: field.TypeInt64},
		{Name: "used_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "reserved_tokens", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "PAUSED", "DEPLETED", "ENDED"}, Default: "ACTIVE"},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "completed_ai_scans", Type: field.TypeInt, Default: 0},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[7]},
			},
		},
	}
	// ReservationsColumns holds the columns for the "reservations" table.
	ReservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "scan_id", Type: field.TypeString},
		{Name: "estimated_tokens", Type: field.TypeInt64},
		{Name: "settled", Type: field.TypeBool, Default: false},
		{Name: "settled_at", Type: field.TypeTime, Nullable: true},
	}
	// ReservationsTable holds the schema information for the "reservations" table.
	ReservationsTable = &schema.Table{
		Name:       "reservations",
		Columns:    ReservationsColumns,
		PrimaryKey: []*schema.Column{ReservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reservation_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[3]},
			},
			{
				Name:    "reservation_settled",
				Unique:  false,
				Columns: []*schema.Column{ReservationsColumns[6]},
			},
			{
				Name:    "reservation_scan_id",
				Unique:  true,
				Columns: []*schema.Column{ReservationsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT settled",
				},
			},
		},
	}
	// ScansColumns holds the columns for the "scans" table.
	ScansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "page_title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "RUNNING", "COMPLETED", "FAILED", "CANCELLED"}, Default: "PENDING"},
		{Name: "total_issues", Type: field.TypeInt, Default: 0},
		{Name: "critical_issues", Type: field.TypeInt, Default: 0},
		{Name: "serious_issues", Type: field.TypeInt, Default: 0},
		{Name: "moderate_issues", Type: field.TypeInt, Default: 0},
		{Name: "minor_issues", Type: field.TypeInt, Default: 0},
		{Name: "passed_checks", Type: field.TypeInt, Default: 0},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "content_snapshot", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ai_enabled", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ScansTable holds the schema information for the "scans" table.
	ScansTable = &schema.Table{
		Name:       "scans",
		Columns:    ScansColumns,
		PrimaryKey: []*schema.Column{ScansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scan_batch_id",
				Unique:  false,
				Columns: []*schema.Column{ScansColumns[3]},
			},
			{
				Name:    "scan_status",
				Unique:  false,
				Columns: []*schema.Column{ScansColumns[6]},
			},
			{
				Name:    "scan_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScansColumns[3], ScansColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "permissions", Type: field.TypeJSON},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiQueueEntriesTable,
		AuditLogsTable,
		BatchesTable,
		CampaignsTable,
		ReservationsTable,
		ScansTable,
		UsersTable,
	}
)

func init() {
}
