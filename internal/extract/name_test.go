package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "name label",
			text: "Name: Jane Doe\n\nThe essay begins here.",
			want: "Jane Doe",
		},
		{
			name: "student name label",
			text: "Student Name: John O'Brien-Smith\nPeriod 3",
			want: "John O'Brien-Smith",
		},
		{
			name: "submitted by label",
			text: "History Essay\nSubmitted by: Mary Ann Jones\n",
			want: "Mary Ann Jones",
		},
		{
			name: "by label mid document",
			text: "The Great Gatsby\nBy: F. Scott Fitzgerald\n",
			want: "F. Scott Fitzgerald",
		},
		{
			name: "case insensitive label",
			text: "NAME: Alice Walker\n",
			want: "Alice Walker",
		},
		{
			name: "label must start the line",
			text: "In this essay the author name: something is discussed",
			want: "",
		},
		{
			name: "digits rejected",
			text: "Name: Student 42\n",
			want: "",
		},
		{
			name: "single character rejected",
			text: "Name: J\n",
			want: "",
		},
		{
			name: "overlong candidate rejected",
			text: "Name: " + strings.Repeat("a", 120) + "\n",
			want: "",
		},
		{
			name: "no label at all",
			text: "This essay discusses the causes of the French Revolution.",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StudentName(tc.text))
		})
	}
}

func TestStudentNameSearchWindow(t *testing.T) {
	t.Parallel()

	// a label past the first 1000 characters is not considered
	text := strings.Repeat("lorem ipsum dolor sit amet\n", 50) + "Name: Jane Doe\n"
	assert.Greater(t, strings.Index(text, "Name:"), nameSearchWindow)
	assert.Equal(t, "", StudentName(text))

	// the same label inside the window is found
	assert.Equal(t, "Jane Doe", StudentName("Name: Jane Doe\n"+text))
}

func TestStudentNamePrefersEarlierPattern(t *testing.T) {
	t.Parallel()

	// "Name:" outranks "Author:" regardless of position in the text
	text := "Author: Jane Doe\nName: John Smith\n"
	assert.Equal(t, "John Smith", StudentName(text))
}
