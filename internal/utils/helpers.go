package utils

import (
	"github.com/gradepilot/gradepilot/gen/ent"
	"github.com/gradepilot/gradepilot/internal/entity"
)

// ToJob converts an ent row into the transfer shape. Loaded submission
// edges are converted too; an unloaded edge just leaves Submissions nil.
func ToJob(e *ent.GradingJob) *entity.GradingJob {
	j := &entity.GradingJob{
		ID:                         e.ID,
		Title:                      e.Title,
		TotalPoints:                e.TotalPoints,
		Strictness:                 e.Strictness,
		GradeLevel:                 e.GradeLevel,
		AssignmentInstructionsText: e.AssignmentInstructionsText,
		RubricText:                 e.RubricText,
		Status:                     e.Status,
		CreatedAt:                  e.CreatedAt,
	}
	if subs := e.Edges.Submissions; subs != nil {
		j.Submissions = make([]*entity.Submission, len(subs))
		for i, s := range subs {
			j.Submissions[i] = ToSubmission(s)
		}
		j.SubmissionCount = len(subs)
	}
	return j
}

func ToSubmission(e *ent.Submission) *entity.Submission {
	s := &entity.Submission{
		ID:               e.ID,
		JobID:            e.JobID,
		StudentName:      e.StudentName,
		NameSource:       e.NameSource,
		OriginalFilename: e.OriginalFilename,
		FileURI:          e.FileURI,
		ExtractedText:    e.ExtractedText,
		Status:           e.Status,
		ErrorMessage:     e.ErrorMessage,
		CreatedAt:        e.CreatedAt,
	}
	if r := e.Edges.GradeResult; r != nil {
		s.GradeResult = ToGradeResult(r)
	}
	return s
}

func ToGradeResult(e *ent.GradeResult) *entity.GradeResult {
	return &entity.GradeResult{
		ID:              e.ID,
		SubmissionID:    e.SubmissionID,
		Score:           e.Score,
		Feedback:        e.Feedback,
		RubricBreakdown: e.RubricBreakdown,
		CreatedAt:       e.CreatedAt,
	}
}
