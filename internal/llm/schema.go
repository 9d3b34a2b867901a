package llm

import "fmt"

// BuildGradeJSONSchema returns the JSON Schema shown to the model as a
// prompt hint. maxScore closes the hint around the job's point budget,
// steering the model toward the expected range.
func BuildGradeJSONSchema(maxScore int) []byte {
	return []byte(fmt.Sprintf(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["score", "feedback"],
  "properties": {
    "score": {
      "type": "number",
      "minimum": 0,
      "maximum": %d
    },
    "feedback": {
      "type": "string",
      "minLength": 1
    },
    "rubric_breakdown": {
      "type": "string"
    }
  }
}`, maxScore))
}

// BuildGradeValidationSchema returns the schema replies are validated
// against. It checks shape only: the score is stored as the model returned
// it, so no range bounds here even when the hint schema carries them.
func BuildGradeValidationSchema() []byte {
	return []byte(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["score", "feedback"],
  "properties": {
    "score": {
      "type": "number"
    },
    "feedback": {
      "type": "string",
      "minLength": 1
    },
    "rubric_breakdown": {
      "type": "string"
    }
  }
}`)
}
