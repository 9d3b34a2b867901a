package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gradepilot/gradepilot/internal/llm"
)

// Grade implements llm.Grader using text-only chat/completions with
// response_format json_object. The model output is sanitized and validated
// against the grade schema before it is accepted.
func (c *Client) Grade(ctx context.Context, req llm.GradeRequest) (llm.GradeFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	temp := TemperatureFor(req.Strictness)

	c.logger.Info("llm.grade.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", temp,
		"strictness", req.Strictness,
		"total_points", req.TotalPoints,
		"text_len", len(req.SubmissionText),
		"has_rubric", strings.TrimSpace(req.RubricText) != "",
	)

	schema := llm.BuildGradeJSONSchema(req.TotalPoints)
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     temp,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + string(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("llm.grade.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.grade.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.grade.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Sanitize first: models occasionally return a quoted score or a
	// structured rubric_breakdown, both cheap to repair.
	cleaned, _, sErr := llm.NormalizeAndSanitizeJSON(rawContent, c.logger)
	if sErr != nil {
		c.logger.Error("llm.grade.sanitize_failed",
			"req_id", rid, "error", sErr, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildGradeValidationSchema(), cleaned); err != nil {
		c.logger.Error("llm.grade.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.GradeFields
	if err := json.Unmarshal(cleaned, &out); err != nil {
		c.logger.Error("llm.grade.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.GradeFields{}, cleaned, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.logger.Info("llm.grade.ok",
		"req_id", rid,
		"score", out.Score,
		"feedback_len", len(out.Feedback),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, cleaned, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}
