package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepilot/gradepilot/constants"
	"github.com/gradepilot/gradepilot/internal/llm"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func newTestServer(t *testing.T, handler func(body map[string]any) (int, any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		status, resp := handler(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func gradeReq() llm.GradeRequest {
	return llm.GradeRequest{
		SubmissionText:         "The revolution began in 1789.",
		AssignmentInstructions: "Write about the French Revolution.",
		Strictness:             constants.StrictnessStrict,
		TotalPoints:            100,
	}
}

func TestGradeParsesValidResponse(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(body map[string]any) (int, any) {
		// strictness steers the temperature sent to the API
		assert.InDelta(t, 0.1, body["temperature"].(float64), 0.001)
		return http.StatusOK, chatResponse(`{"score":87.5,"feedback":"Strong thesis."}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	fields, raw, err := c.Grade(context.Background(), gradeReq())
	require.NoError(t, err)
	assert.Equal(t, 87.5, fields.Score)
	assert.Equal(t, "Strong thesis.", fields.Feedback)
	assert.NotEmpty(t, raw)
}

func TestGradeSanitizesRepairableOutput(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(_ map[string]any) (int, any) {
		return http.StatusOK, chatResponse(`{"score":"72","feedback":"Good effort.","confidence":0.8}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	fields, _, err := c.Grade(context.Background(), gradeReq())
	require.NoError(t, err)
	assert.Equal(t, 72.0, fields.Score)
}

func TestGradeKeepsOutOfRangeScoreVerbatim(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(_ map[string]any) (int, any) {
		return http.StatusOK, chatResponse(`{"score":150,"feedback":"way too generous"}`)
	})
	defer srv.Close()

	// the score is trusted as the model returned it, even past the budget
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	fields, _, err := c.Grade(context.Background(), gradeReq())
	require.NoError(t, err)
	assert.Equal(t, 150.0, fields.Score)
}

func TestGradeRejectsMalformedReply(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(_ map[string]any) (int, any) {
		return http.StatusOK, chatResponse(`{"score":90}`)
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.Grade(context.Background(), gradeReq())
	assert.ErrorContains(t, err, "schema validation failed")
}

func TestGradeSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(_ map[string]any) (int, any) {
		return http.StatusTooManyRequests, map[string]any{"error": "rate limited"}
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.Grade(context.Background(), gradeReq())
	assert.ErrorContains(t, err, "openai status 429")
}

func TestGradeNoChoices(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(_ map[string]any) (int, any) {
		return http.StatusOK, map[string]any{"choices": []any{}}
	})
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	_, _, err := c.Grade(context.Background(), gradeReq())
	assert.ErrorContains(t, err, "no choices")
}
