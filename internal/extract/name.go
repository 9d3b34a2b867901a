package extract

import (
	"regexp"
	"strings"
)

// Header label patterns a student name commonly sits behind. Anchored to
// line starts, matched case-insensitively against the document header.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^Name:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^Student Name:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^Student:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^Author:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^By:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^Submitted by:\s*(.+?)\s*$`),
	regexp.MustCompile(`(?im)^Written by:\s*(.+?)\s*$`),
}

var nameChars = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)

const nameSearchWindow = 1000

// StudentName scans the document header for a labeled student name.
// A candidate is accepted only when it is short (2-99 characters) and
// composed solely of letters, spaces, hyphens, apostrophes, and periods.
// Returns "" when nothing plausible is found.
func StudentName(text string) string {
	header := text
	if len(header) > nameSearchWindow {
		header = header[:nameSearchWindow]
	}

	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(header)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) > 1 && len(name) < 100 && nameChars.MatchString(name) {
			return name
		}
	}
	return ""
}
