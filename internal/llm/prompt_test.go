package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepilot/gradepilot/constants"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Parallel()

	sys := BuildSystemPrompt(GradeRequest{
		Strictness:  constants.StrictnessStrict,
		TotalPoints: 50,
		GradeLevel:  "8th grade",
	})
	assert.Contains(t, sys, "maximum of 50 points")
	assert.Contains(t, sys, "Strictness: STRICT")
	assert.Contains(t, sys, "8th grade")

	sys = BuildSystemPrompt(GradeRequest{Strictness: constants.StrictnessNormal, TotalPoints: 100})
	assert.NotContains(t, sys, "grade level")
}

func TestBuildUserPromptDerivesRubricWhenMissing(t *testing.T) {
	t.Parallel()

	user := BuildUserPrompt(GradeRequest{
		SubmissionText:         "essay body",
		AssignmentInstructions: "Write about the French Revolution.",
	})
	assert.Contains(t, user, "Write about the French Revolution.")
	assert.Contains(t, user, "general academic standards")
	assert.Contains(t, user, "essay body")
}

func TestBuildUserPromptIncludesRubricAndFilename(t *testing.T) {
	t.Parallel()

	user := BuildUserPrompt(GradeRequest{
		SubmissionText:         "essay body",
		AssignmentInstructions: "instructions",
		RubricText:             "Thesis 40, Evidence 60",
		FilenameHint:           "jane_doe.pdf",
	})
	assert.Contains(t, user, "Thesis 40, Evidence 60")
	assert.NotContains(t, user, "general academic standards")
	assert.Contains(t, user, "Filename: jane_doe.pdf")
}

func TestBuildUserPromptTruncatesLongSubmissions(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", maxSubmissionChars+5000)
	user := BuildUserPrompt(GradeRequest{
		SubmissionText:         long,
		AssignmentInstructions: "instructions",
	})
	assert.Less(t, len(user), maxSubmissionChars+2000)

	short := BuildUserPrompt(GradeRequest{
		SubmissionText:         "tiny",
		AssignmentInstructions: "instructions",
	})
	assert.Contains(t, short, "tiny")
}
