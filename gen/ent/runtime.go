// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/db/ent/schema"
	"github.com/gradepilot/gradepilot/gen/ent/graderesult"
	"github.com/gradepilot/gradepilot/gen/ent/gradingjob"
	"github.com/gradepilot/gradepilot/gen/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	graderesultFields := schema.GradeResult{}.Fields()
	_ = graderesultFields
	// graderesultDescRubricBreakdown is the schema descriptor for rubric_breakdown field.
	graderesultDescRubricBreakdown := graderesultFields[4].Descriptor()
	// graderesult.DefaultRubricBreakdown holds the default value on creation for the rubric_breakdown field.
	graderesult.DefaultRubricBreakdown = graderesultDescRubricBreakdown.Default.(string)
	// graderesultDescCreatedAt is the schema descriptor for created_at field.
	graderesultDescCreatedAt := graderesultFields[5].Descriptor()
	// graderesult.DefaultCreatedAt holds the default value on creation for the created_at field.
	graderesult.DefaultCreatedAt = graderesultDescCreatedAt.Default.(func() time.Time)
	// graderesultDescID is the schema descriptor for id field.
	graderesultDescID := graderesultFields[0].Descriptor()
	// graderesult.DefaultID holds the default value on creation for the id field.
	graderesult.DefaultID = graderesultDescID.Default.(func() uuid.UUID)
	gradingjobFields := schema.GradingJob{}.Fields()
	_ = gradingjobFields
	// gradingjobDescTitle is the schema descriptor for title field.
	gradingjobDescTitle := gradingjobFields[1].Descriptor()
	// gradingjob.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	gradingjob.TitleValidator = gradingjobDescTitle.Validators[0].(func(string) error)
	// gradingjobDescTotalPoints is the schema descriptor for total_points field.
	gradingjobDescTotalPoints := gradingjobFields[2].Descriptor()
	// gradingjob.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	gradingjob.TotalPointsValidator = gradingjobDescTotalPoints.Validators[0].(func(int) error)
	// gradingjobDescStrictness is the schema descriptor for strictness field.
	gradingjobDescStrictness := gradingjobFields[3].Descriptor()
	// gradingjob.DefaultStrictness holds the default value on creation for the strictness field.
	gradingjob.DefaultStrictness = gradingjobDescStrictness.Default.(string)
	// gradingjob.StrictnessValidator is a validator for the "strictness" field. It is called by the builders before save.
	gradingjob.StrictnessValidator = gradingjobDescStrictness.Validators[0].(func(string) error)
	// gradingjobDescAssignmentInstructionsText is the schema descriptor for assignment_instructions_text field.
	gradingjobDescAssignmentInstructionsText := gradingjobFields[5].Descriptor()
	// gradingjob.AssignmentInstructionsTextValidator is a validator for the "assignment_instructions_text" field. It is called by the builders before save.
	gradingjob.AssignmentInstructionsTextValidator = gradingjobDescAssignmentInstructionsText.Validators[0].(func(string) error)
	// gradingjobDescStatus is the schema descriptor for status field.
	gradingjobDescStatus := gradingjobFields[7].Descriptor()
	// gradingjob.DefaultStatus holds the default value on creation for the status field.
	gradingjob.DefaultStatus = gradingjobDescStatus.Default.(string)
	// gradingjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	gradingjob.StatusValidator = gradingjobDescStatus.Validators[0].(func(string) error)
	// gradingjobDescCreatedAt is the schema descriptor for created_at field.
	gradingjobDescCreatedAt := gradingjobFields[8].Descriptor()
	// gradingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	gradingjob.DefaultCreatedAt = gradingjobDescCreatedAt.Default.(func() time.Time)
	// gradingjobDescID is the schema descriptor for id field.
	gradingjobDescID := gradingjobFields[0].Descriptor()
	// gradingjob.DefaultID holds the default value on creation for the id field.
	gradingjob.DefaultID = gradingjobDescID.Default.(func() uuid.UUID)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescStudentName is the schema descriptor for student_name field.
	submissionDescStudentName := submissionFields[2].Descriptor()
	// submission.StudentNameValidator is a validator for the "student_name" field. It is called by the builders before save.
	submission.StudentNameValidator = submissionDescStudentName.Validators[0].(func(string) error)
	// submissionDescNameSource is the schema descriptor for name_source field.
	submissionDescNameSource := submissionFields[3].Descriptor()
	// submission.DefaultNameSource holds the default value on creation for the name_source field.
	submission.DefaultNameSource = submissionDescNameSource.Default.(string)
	// submission.NameSourceValidator is a validator for the "name_source" field. It is called by the builders before save.
	submission.NameSourceValidator = submissionDescNameSource.Validators[0].(func(string) error)
	// submissionDescOriginalFilename is the schema descriptor for original_filename field.
	submissionDescOriginalFilename := submissionFields[4].Descriptor()
	// submission.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	submission.OriginalFilenameValidator = submissionDescOriginalFilename.Validators[0].(func(string) error)
	// submissionDescFileURI is the schema descriptor for file_uri field.
	submissionDescFileURI := submissionFields[5].Descriptor()
	// submission.FileURIValidator is a validator for the "file_uri" field. It is called by the builders before save.
	submission.FileURIValidator = submissionDescFileURI.Validators[0].(func(string) error)
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[7].Descriptor()
	// submission.DefaultStatus holds the default value on creation for the status field.
	submission.DefaultStatus = submissionDescStatus.Default.(string)
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[9].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
}
