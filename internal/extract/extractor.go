package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gradepilot/gradepilot/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

// Result carries the extracted plain text plus extraction metadata.
type Result struct {
	Text     string
	Method   string // "pdf-text" | "docx-xml" | "plain-text"
	Pages    int
	Duration time.Duration
}

// TextExtractor converts a stored submission file into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("stat %q: %w", path, err)
	}

	var res Result
	var err error
	switch ext {
	case "pdf":
		res, err = e.extractPDF(ctx, path)
	case "docx":
		res, err = e.extractDOCX(path)
	case "txt", "rtf":
		res, err = e.extractPlain(path, ext)
	default:
		e.logger.Error("unsupported document extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	res.Duration = time.Since(start)
	if err != nil {
		e.logger.Error("extraction failed", "path", path, "method", res.Method, "error", err)
		return res, err
	}
	e.logger.Debug("extraction ok",
		"path", path, "method", res.Method,
		"bytes", len(res.Text), "elapsed_ms", res.Duration.Milliseconds())
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Method: "pdf-text"}, fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return Result{Text: text, Method: "pdf-text", Pages: pages}, nil
}

func (e *Extractor) extractPlain(path, ext string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{Method: "plain-text"}, err
	}
	text := string(b)
	if ext == "rtf" {
		// no dedicated RTF parser; strip control words best-effort
		text = stripRTF(text)
	}
	return Result{Text: text, Method: "plain-text", Pages: 1}, nil
}

// stripRTF removes RTF control words and group braces so that the body text
// remains readable. Good enough for grading; not a full RTF decoder.
func stripRTF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '{', '}':
			i++
		case '\\':
			i++
			// \' hex escape
			if i < len(s) && s[i] == '\'' {
				i += 3
				continue
			}
			// control word: letters then optional numeric parameter
			for i < len(s) && isRTFLetter(s[i]) {
				i++
			}
			if i < len(s) && (s[i] == '-' || isDigit(s[i])) {
				i++
				for i < len(s) && isDigit(s[i]) {
					i++
				}
			}
			// a single space delimiter belongs to the control word
			if i < len(s) && s[i] == ' ' {
				i++
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func isRTFLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
