package llm

import (
	"fmt"
	"strings"
)

// maxSubmissionChars caps how much submission text is sent to the model.
const maxSubmissionChars = 50000

// BuildSystemPrompt composes the grader persona with strictness, point
// budget, and output-format rules.
func BuildSystemPrompt(req GradeRequest) string {
	parts := []string{
		"You are a precise and fair academic grading assistant. Return ONLY JSON that matches the provided JSON Schema.",
		fmt.Sprintf("Grade the student submission out of a maximum of %d points.", req.TotalPoints),
		"Strictness: " + string(req.Strictness) + ". STRICT means deduct for every weakness; LENIENT means reward effort and intent; NORMAL is balanced.",
		"For 'feedback', write detailed constructive feedback addressed to the student.",
		"For 'rubric_breakdown', briefly explain how the score maps onto the grading criteria.",
		"Never output null. If a field has no content, omit it.",
	}
	if gl := strings.TrimSpace(req.GradeLevel); gl != "" {
		parts = append(parts, "Calibrate expectations to grade level: "+gl+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages instructions, rubric, and the submission text.
// When no rubric is configured the model is told to derive one from the
// assignment instructions.
func BuildUserPrompt(req GradeRequest) string {
	rubric := strings.TrimSpace(req.RubricText)
	if rubric == "" {
		rubric = "Evaluate based on general academic standards appropriate for the instructions."
	}

	var b strings.Builder
	b.WriteString("Assignment Instructions:\n")
	b.WriteString(strings.TrimSpace(req.AssignmentInstructions))
	b.WriteString("\n\nRubric:\n")
	b.WriteString(rubric)
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("\n\nFilename: ")
		b.WriteString(f)
	}
	b.WriteString("\n\nStudent Submission Text:\n\"\"\"\n")
	text := req.SubmissionText
	if len(text) > maxSubmissionChars {
		text = text[:maxSubmissionChars]
	}
	b.WriteString(text)
	b.WriteString("\n\"\"\"")
	return b.String()
}
