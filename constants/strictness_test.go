package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrictness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Strictness
		wantOK bool
	}{
		{"", StrictnessNormal, true},
		{"STRICT", StrictnessStrict, true},
		{"strict", StrictnessStrict, true},
		{"  Lenient  ", StrictnessLenient, true},
		{"NORMAL", StrictnessNormal, true},
		{"BRUTAL", StrictnessNormal, false},
	}
	for _, tc := range tests {
		got, ok := ParseStrictness(tc.input)
		assert.Equal(t, tc.want, got, tc.input)
		assert.Equal(t, tc.wantOK, ok, tc.input)
	}
}

func TestSubmissionStatusTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, SubmissionStatusGraded.IsTerminal())
	assert.True(t, SubmissionStatusFailed.IsTerminal())
	assert.False(t, SubmissionStatusPending.IsTerminal())
	assert.False(t, SubmissionStatusProcessing.IsTerminal())

	assert.True(t, SubmissionStatusPending.Eligible())
	assert.True(t, SubmissionStatusFailed.Eligible())
	assert.False(t, SubmissionStatusProcessing.Eligible())
	assert.False(t, SubmissionStatusGraded.Eligible())
}
