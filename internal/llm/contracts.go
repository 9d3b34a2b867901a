package llm

import (
	"context"

	"github.com/gradepilot/gradepilot/constants"
)

// GradeFields is the normalized shape we want from the model.
type GradeFields struct {
	Score           float64 `json:"score"`
	Feedback        string  `json:"feedback"`
	RubricBreakdown string  `json:"rubric_breakdown,omitempty"`
}

type GradeRequest struct {
	SubmissionText         string
	AssignmentInstructions string
	RubricText             string // empty -> derive from instructions
	Strictness             constants.Strictness
	TotalPoints            int
	GradeLevel             string // optional, e.g. "8th grade"
	FilenameHint           string
}

// Grader is the interface the grading worker depends on.
type Grader interface {
	Grade(ctx context.Context, req GradeRequest) (GradeFields, []byte /*rawJSON*/, error)
}
