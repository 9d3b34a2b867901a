package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSONCoercesQuotedScore(t *testing.T) {
	t.Parallel()

	out, _, err := NormalizeAndSanitizeJSON([]byte(`{"score":"87.5","feedback":"good"}`), nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 87.5, m["score"])
	assert.Equal(t, "good", m["feedback"])
}

func TestNormalizeAndSanitizeJSONStringifiesRubricObject(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"score":90,"feedback":"ok","rubric_breakdown":{"thesis":35,"evidence":40}}`)
	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "rubric_breakdown(stringified)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	s, ok := m["rubric_breakdown"].(string)
	require.True(t, ok, "rubric_breakdown must be a string after sanitize")
	assert.Contains(t, s, "thesis")
}

func TestNormalizeAndSanitizeJSONDropsUnknownAndNull(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"score":50,"feedback":"ok","rubric_breakdown":null,"confidence":0.9,"grade_letter":"B"}`)
	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "rubric_breakdown")
	assert.NotContains(t, m, "confidence")
	assert.NotContains(t, m, "grade_letter")
	assert.Contains(t, dropped, "rubric_breakdown(null)")
	assert.Contains(t, dropped, "confidence(unknown)")
}

func TestNormalizeAndSanitizeJSONUnparseableScoreDropped(t *testing.T) {
	t.Parallel()

	out, dropped, err := NormalizeAndSanitizeJSON([]byte(`{"score":"ninety","feedback":"ok"}`), nil)
	require.NoError(t, err)
	assert.Contains(t, dropped, "score(unparseable)")

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "score")
}

func TestNormalizeAndSanitizeJSONRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, _, err := NormalizeAndSanitizeJSON([]byte(`"just a string"`), nil)
	assert.Error(t, err)
}

func TestValidateJSONAgainstGradeSchema(t *testing.T) {
	t.Parallel()

	schema := BuildGradeValidationSchema()

	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":87.5,"feedback":"Strong thesis."}`)))
	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":100,"feedback":"Perfect.","rubric_breakdown":"all criteria met"}`)))

	// the score is trusted as returned: shape-checked, never range-checked
	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":150,"feedback":"generous"}`)))
	assert.NoError(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":-1,"feedback":"harsh"}`)))

	// missing required feedback
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"score":87.5}`)))
	// non-numeric score
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":"ninety","feedback":"x"}`)))
	// unknown keys are rejected
	assert.Error(t, ValidateJSONAgainstSchema(schema,
		[]byte(`{"score":50,"feedback":"x","grade_letter":"B"}`)))
}

func TestGradeHintSchemaCarriesPointBudget(t *testing.T) {
	t.Parallel()

	schema := string(BuildGradeJSONSchema(50))
	assert.Contains(t, schema, `"maximum": 50`)
	assert.Contains(t, schema, `"minimum": 0`)
}

func TestSanitizeThenValidateRoundTrip(t *testing.T) {
	t.Parallel()

	// raw model output that fails strict validation but is repairable
	raw := []byte(`{"score":"72","feedback":"Good effort.","rubric_breakdown":{"style":10},"confidence":0.8}`)
	schema := BuildGradeValidationSchema()
	require.Error(t, ValidateJSONAgainstSchema(schema, raw))

	cleaned, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))

	var fields GradeFields
	require.NoError(t, json.Unmarshal(cleaned, &fields))
	assert.Equal(t, 72.0, fields.Score)
	assert.Equal(t, "Good effort.", fields.Feedback)
}
