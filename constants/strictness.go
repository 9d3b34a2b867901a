package constants

import "strings"

// Strictness is the three-level grading policy on a job. Besides steering
// the grader's tone it selects the sampling temperature of the model call.
type Strictness string

const (
	StrictnessStrict  Strictness = "STRICT"
	StrictnessNormal  Strictness = "NORMAL"
	StrictnessLenient Strictness = "LENIENT"
)

var Strictnesses = []string{
	string(StrictnessStrict),
	string(StrictnessNormal),
	string(StrictnessLenient),
}

// ParseStrictness canonicalizes input, defaulting to NORMAL when empty.
// Unknown values report ok=false.
func ParseStrictness(input string) (Strictness, bool) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "":
		return StrictnessNormal, true
	case string(StrictnessStrict):
		return StrictnessStrict, true
	case string(StrictnessNormal):
		return StrictnessNormal, true
	case string(StrictnessLenient):
		return StrictnessLenient, true
	default:
		return StrictnessNormal, false
	}
}

// NameSource records how a submission's student_name was last set, so an
// opportunistic update from document text never clobbers a user edit.
type NameSource string

const (
	NameSourceFilename NameSource = "FILENAME" // derived from the upload's filename
	NameSourceDocument NameSource = "DOCUMENT" // parsed out of the document header
	NameSourceUser     NameSource = "USER"     // set deliberately via the API
)

var NameSources = []string{
	string(NameSourceFilename),
	string(NameSourceDocument),
	string(NameSourceUser),
}
