package entity

import (
	"time"

	"github.com/google/uuid"
)

// GradeResult represents one grading outcome for data transfer between
// layers. Scores are carried exactly as the grader produced them.
type GradeResult struct {
	ID              uuid.UUID `json:"id"`
	SubmissionID    uuid.UUID `json:"submission_id"`
	Score           float64   `json:"score"`
	Feedback        string    `json:"feedback"`
	RubricBreakdown string    `json:"rubric_breakdown"`
	CreatedAt       time.Time `json:"created_at"`
}
