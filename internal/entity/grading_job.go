package entity

import (
	"time"

	"github.com/google/uuid"
)

// GradingJob represents a grading job for data transfer between layers.
type GradingJob struct {
	ID                         uuid.UUID     `json:"id"`
	Title                      string        `json:"title"`
	TotalPoints                int           `json:"total_points"`
	Strictness                 string        `json:"strictness"`
	GradeLevel                 *string       `json:"grade_level,omitempty"`
	AssignmentInstructionsText string        `json:"assignment_instructions_text"`
	RubricText                 *string       `json:"rubric_text,omitempty"`
	Status                     string        `json:"status"`
	CreatedAt                  time.Time     `json:"created_at"`
	SubmissionCount            int           `json:"submission_count"`
	Submissions                []*Submission `json:"submissions,omitempty"`
}
