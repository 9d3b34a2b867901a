package constants

import "strings"

// DocumentExtensions holds the directly supported document types for
// submission intake (lowercased, without the dot).
var DocumentExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"txt":  {},
	"rtf":  {},
}

// ArchiveExtension is the only supported bulk-upload container.
const ArchiveExtension = "zip"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsDocumentExt reports whether ext (normalized or not) is a supported
// document type.
func IsDocumentExt(ext string) bool {
	_, ok := DocumentExtensions[NormalizeExt(ext)]
	return ok
}

// IsArchiveExt reports whether ext marks a bulk-upload archive.
func IsArchiveExt(ext string) bool {
	return NormalizeExt(ext) == ArchiveExtension
}
