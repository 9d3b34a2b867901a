// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradeResultsColumns holds the columns for the "grade_results" table.
	GradeResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(8,2)"}},
		{Name: "feedback", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "rubric_breakdown", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submission_id", Type: field.TypeUUID, Unique: true},
	}
	// GradeResultsTable holds the schema information for the "grade_results" table.
	GradeResultsTable = &schema.Table{
		Name:       "grade_results",
		Columns:    GradeResultsColumns,
		PrimaryKey: []*schema.Column{GradeResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grade_results_submissions_grade_result",
				Columns:    []*schema.Column{GradeResultsColumns[5]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// GradingJobsColumns holds the columns for the "grading_jobs" table.
	GradingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "total_points", Type: field.TypeInt},
		{Name: "strictness", Type: field.TypeString, Default: "NORMAL"},
		{Name: "grade_level", Type: field.TypeString, Nullable: true},
		{Name: "assignment_instructions_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "rubric_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "DRAFT"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GradingJobsTable holds the schema information for the "grading_jobs" table.
	GradingJobsTable = &schema.Table{
		Name:       "grading_jobs",
		Columns:    GradingJobsColumns,
		PrimaryKey: []*schema.Column{GradingJobsColumns[0]},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "student_name", Type: field.TypeString},
		{Name: "name_source", Type: field.TypeString, Default: "FILENAME"},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "file_uri", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_grading_jobs_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[9]},
				RefColumns: []*schema.Column{GradingJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[9], SubmissionsColumns[6]},
			},
			{
				Name:    "submission_job_id_student_name",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[9], SubmissionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradeResultsTable,
		GradingJobsTable,
		SubmissionsTable,
	}
)

func init() {
	GradeResultsTable.ForeignKeys[0].RefTable = SubmissionsTable
	GradeResultsTable.Annotation = &entsql.Annotation{
		Table: "grade_results",
	}
	GradingJobsTable.Annotation = &entsql.Annotation{
		Table: "grading_jobs",
	}
	SubmissionsTable.ForeignKeys[0].RefTable = GradingJobsTable
	SubmissionsTable.Annotation = &entsql.Annotation{
		Table: "submissions",
	}
}
