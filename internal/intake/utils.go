package intake

import (
	"path/filepath"
	"strings"

	"github.com/gradepilot/gradepilot/constants"
)

// StudentNameFromFilename derives the provisional student name: the base
// filename without extension, underscores turned into spaces, whitespace
// collapsed. "john_smith_essay.pdf" -> "john smith essay".
func StudentNameFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	name := strings.Join(strings.Fields(base), " ")
	if name == "" {
		return filepath.Base(filename)
	}
	return name
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// usableDocument reports whether an archive entry or directory file should
// become a submission.
func usableDocument(path string) bool {
	return constants.IsDocumentExt(constants.NormalizeExt(filepath.Ext(path)))
}
