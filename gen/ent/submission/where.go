// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldJobID, v))
}

// StudentName applies equality check predicate on the "student_name" field. It's identical to StudentNameEQ.
func StudentName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentName, v))
}

// NameSource applies equality check predicate on the "name_source" field. It's identical to NameSourceEQ.
func NameSource(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldNameSource, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOriginalFilename, v))
}

// FileURI applies equality check predicate on the "file_uri" field. It's identical to FileURIEQ.
func FileURI(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFileURI, v))
}

// ExtractedText applies equality check predicate on the "extracted_text" field. It's identical to ExtractedTextEQ.
func ExtractedText(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldExtractedText, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldJobID, vs...))
}

// StudentNameEQ applies the EQ predicate on the "student_name" field.
func StudentNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStudentName, v))
}

// StudentNameNEQ applies the NEQ predicate on the "student_name" field.
func StudentNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStudentName, v))
}

// StudentNameIn applies the In predicate on the "student_name" field.
func StudentNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStudentName, vs...))
}

// StudentNameNotIn applies the NotIn predicate on the "student_name" field.
func StudentNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStudentName, vs...))
}

// StudentNameGT applies the GT predicate on the "student_name" field.
func StudentNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStudentName, v))
}

// StudentNameGTE applies the GTE predicate on the "student_name" field.
func StudentNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStudentName, v))
}

// StudentNameLT applies the LT predicate on the "student_name" field.
func StudentNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStudentName, v))
}

// StudentNameLTE applies the LTE predicate on the "student_name" field.
func StudentNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStudentName, v))
}

// StudentNameContains applies the Contains predicate on the "student_name" field.
func StudentNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStudentName, v))
}

// StudentNameHasPrefix applies the HasPrefix predicate on the "student_name" field.
func StudentNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStudentName, v))
}

// StudentNameHasSuffix applies the HasSuffix predicate on the "student_name" field.
func StudentNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStudentName, v))
}

// StudentNameEqualFold applies the EqualFold predicate on the "student_name" field.
func StudentNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStudentName, v))
}

// StudentNameContainsFold applies the ContainsFold predicate on the "student_name" field.
func StudentNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStudentName, v))
}

// NameSourceEQ applies the EQ predicate on the "name_source" field.
func NameSourceEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldNameSource, v))
}

// NameSourceNEQ applies the NEQ predicate on the "name_source" field.
func NameSourceNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldNameSource, v))
}

// NameSourceIn applies the In predicate on the "name_source" field.
func NameSourceIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldNameSource, vs...))
}

// NameSourceNotIn applies the NotIn predicate on the "name_source" field.
func NameSourceNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldNameSource, vs...))
}

// NameSourceGT applies the GT predicate on the "name_source" field.
func NameSourceGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldNameSource, v))
}

// NameSourceGTE applies the GTE predicate on the "name_source" field.
func NameSourceGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldNameSource, v))
}

// NameSourceLT applies the LT predicate on the "name_source" field.
func NameSourceLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldNameSource, v))
}

// NameSourceLTE applies the LTE predicate on the "name_source" field.
func NameSourceLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldNameSource, v))
}

// NameSourceContains applies the Contains predicate on the "name_source" field.
func NameSourceContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldNameSource, v))
}

// NameSourceHasPrefix applies the HasPrefix predicate on the "name_source" field.
func NameSourceHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldNameSource, v))
}

// NameSourceHasSuffix applies the HasSuffix predicate on the "name_source" field.
func NameSourceHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldNameSource, v))
}

// NameSourceEqualFold applies the EqualFold predicate on the "name_source" field.
func NameSourceEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldNameSource, v))
}

// NameSourceContainsFold applies the ContainsFold predicate on the "name_source" field.
func NameSourceContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldNameSource, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// FileURIEQ applies the EQ predicate on the "file_uri" field.
func FileURIEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFileURI, v))
}

// FileURINEQ applies the NEQ predicate on the "file_uri" field.
func FileURINEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFileURI, v))
}

// FileURIIn applies the In predicate on the "file_uri" field.
func FileURIIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFileURI, vs...))
}

// FileURINotIn applies the NotIn predicate on the "file_uri" field.
func FileURINotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFileURI, vs...))
}

// FileURIGT applies the GT predicate on the "file_uri" field.
func FileURIGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFileURI, v))
}

// FileURIGTE applies the GTE predicate on the "file_uri" field.
func FileURIGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFileURI, v))
}

// FileURILT applies the LT predicate on the "file_uri" field.
func FileURILT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFileURI, v))
}

// FileURILTE applies the LTE predicate on the "file_uri" field.
func FileURILTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFileURI, v))
}

// FileURIContains applies the Contains predicate on the "file_uri" field.
func FileURIContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFileURI, v))
}

// FileURIHasPrefix applies the HasPrefix predicate on the "file_uri" field.
func FileURIHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFileURI, v))
}

// FileURIHasSuffix applies the HasSuffix predicate on the "file_uri" field.
func FileURIHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFileURI, v))
}

// FileURIEqualFold applies the EqualFold predicate on the "file_uri" field.
func FileURIEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFileURI, v))
}

// FileURIContainsFold applies the ContainsFold predicate on the "file_uri" field.
func FileURIContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFileURI, v))
}

// ExtractedTextEQ applies the EQ predicate on the "extracted_text" field.
func ExtractedTextEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldExtractedText, v))
}

// ExtractedTextNEQ applies the NEQ predicate on the "extracted_text" field.
func ExtractedTextNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldExtractedText, v))
}

// ExtractedTextIn applies the In predicate on the "extracted_text" field.
func ExtractedTextIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldExtractedText, vs...))
}

// ExtractedTextNotIn applies the NotIn predicate on the "extracted_text" field.
func ExtractedTextNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldExtractedText, vs...))
}

// ExtractedTextGT applies the GT predicate on the "extracted_text" field.
func ExtractedTextGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldExtractedText, v))
}

// ExtractedTextGTE applies the GTE predicate on the "extracted_text" field.
func ExtractedTextGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldExtractedText, v))
}

// ExtractedTextLT applies the LT predicate on the "extracted_text" field.
func ExtractedTextLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldExtractedText, v))
}

// ExtractedTextLTE applies the LTE predicate on the "extracted_text" field.
func ExtractedTextLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldExtractedText, v))
}

// ExtractedTextContains applies the Contains predicate on the "extracted_text" field.
func ExtractedTextContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldExtractedText, v))
}

// ExtractedTextHasPrefix applies the HasPrefix predicate on the "extracted_text" field.
func ExtractedTextHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldExtractedText, v))
}

// ExtractedTextHasSuffix applies the HasSuffix predicate on the "extracted_text" field.
func ExtractedTextHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldExtractedText, v))
}

// ExtractedTextIsNil applies the IsNil predicate on the "extracted_text" field.
func ExtractedTextIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldExtractedText))
}

// ExtractedTextNotNil applies the NotNil predicate on the "extracted_text" field.
func ExtractedTextNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldExtractedText))
}

// ExtractedTextEqualFold applies the EqualFold predicate on the "extracted_text" field.
func ExtractedTextEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldExtractedText, v))
}

// ExtractedTextContainsFold applies the ContainsFold predicate on the "extracted_text" field.
func ExtractedTextContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldExtractedText, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.GradingJob) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGradeResult applies the HasEdge predicate on the "grade_result" edge.
func HasGradeResult() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, GradeResultTable, GradeResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGradeResultWith applies the HasEdge predicate on the "grade_result" edge with a given conditions (other predicates).
func HasGradeResultWith(preds ...predicate.GradeResult) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newGradeResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
