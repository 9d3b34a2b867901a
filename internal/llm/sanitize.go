package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// NormalizeAndSanitizeJSON
// - Coerces string -> number for score
// - Stringifies an object/array rubric_breakdown
// - Drops null/empty optionals
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)

	// 1) coerce score to a number
	if v, ok := m["score"]; ok {
		switch t := v.(type) {
		case float64:
			// already fine
		case string:
			s := strings.TrimSpace(t)
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				m["score"] = f
			} else {
				delete(m, "score")
				dropped = append(dropped, "score(unparseable)")
			}
		case nil:
			delete(m, "score")
			dropped = append(dropped, "score(null)")
		default:
			delete(m, "score")
			dropped = append(dropped, "score(type)")
		}
	}

	// 2) rubric_breakdown: keep strings, stringify structured values
	if v, ok := m["rubric_breakdown"]; ok {
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, "rubric_breakdown")
				dropped = append(dropped, "rubric_breakdown(empty)")
			} else {
				m["rubric_breakdown"] = s
			}
		case nil:
			delete(m, "rubric_breakdown")
			dropped = append(dropped, "rubric_breakdown(null)")
		case map[string]any, []any:
			b, err := json.Marshal(t)
			if err != nil {
				delete(m, "rubric_breakdown")
				dropped = append(dropped, "rubric_breakdown(type)")
			} else {
				m["rubric_breakdown"] = string(b)
				dropped = append(dropped, "rubric_breakdown(stringified)")
			}
		default:
			delete(m, "rubric_breakdown")
			dropped = append(dropped, "rubric_breakdown(type)")
		}
	}

	// 3) feedback must be a non-empty string
	if v, ok := m["feedback"]; ok {
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, "feedback")
				dropped = append(dropped, "feedback(empty)")
			} else {
				m["feedback"] = s
			}
		default:
			delete(m, "feedback")
			dropped = append(dropped, "feedback(type)")
		}
	}

	// 4) remove unknown keys
	allowed := map[string]struct{}{
		"score": {}, "feedback": {}, "rubric_breakdown": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.grade.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
