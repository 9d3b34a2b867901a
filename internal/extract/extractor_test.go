package extract

import (
	"archive/zip"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractPlainText(t *testing.T) {
	t.Parallel()

	e := NewExtractor(Config{}, testLogger())
	path := writeTestFile(t, "essay.txt", "Name: Jane Doe\n\nThe essay body.")

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "plain-text", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "The essay body.")
}

func TestExtractRTFStripsControlWords(t *testing.T) {
	t.Parallel()

	e := NewExtractor(Config{}, testLogger())
	rtf := `{\rtf1\ansi\deff0 {\fonttbl{\f0 Times;}}\f0\fs24 Hello graded world.\par}`
	path := writeTestFile(t, "essay.rtf", rtf)

	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "plain-text", res.Method)
	assert.Contains(t, res.Text, "Hello graded world.")
	assert.NotContains(t, res.Text, `\rtf1`)
	assert.NotContains(t, res.Text, "{")
}

func TestExtractDOCX(t *testing.T) {
	t.Parallel()

	const documentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Name: Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>First</w:t><w:tab/><w:t>second</w:t></w:r></w:p>
    <w:p><w:r><w:t>Line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "essay.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewExtractor(Config{}, testLogger())
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "docx-xml", res.Method)
	assert.Contains(t, res.Text, "Name: Jane Doe\n")
	assert.Contains(t, res.Text, "First\tsecond")
	assert.Contains(t, res.Text, "Line one\nline two")
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := NewExtractor(Config{}, testLogger())
	_, err = e.Extract(context.Background(), path)
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestExtractPDFUsesRunner(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stdout: []byte("page one text\fpage two text")}
	e := NewExtractor(Config{Pdftotext: "pdftotext"}, testLogger())
	e.runner = runner

	path := writeTestFile(t, "essay.pdf", "%PDF-1.4 fake")
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "pdftotext", runner.gotName)
	assert.Equal(t, []string{"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-"}, runner.gotArgs)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "page two text")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	t.Parallel()

	e := NewExtractor(Config{}, testLogger())
	path := writeTestFile(t, "image.heic", "not a document")

	_, err := e.Extract(context.Background(), path)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestExtractMissingFile(t *testing.T) {
	t.Parallel()

	e := NewExtractor(Config{}, testLogger())
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}
