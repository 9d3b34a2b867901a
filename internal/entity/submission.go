package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents a submission for data transfer between layers.
type Submission struct {
	ID               uuid.UUID    `json:"id"`
	JobID            uuid.UUID    `json:"job_id"`
	StudentName      string       `json:"student_name"`
	NameSource       string       `json:"name_source"`
	OriginalFilename string       `json:"original_filename"`
	FileURI          string       `json:"file_uri"`
	ExtractedText    *string      `json:"extracted_text,omitempty"`
	Status           string       `json:"status"`
	ErrorMessage     *string      `json:"error_message,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	GradeResult      *GradeResult `json:"grade_result,omitempty"`
}
