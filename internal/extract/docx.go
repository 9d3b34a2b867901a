package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls the text runs out of word/document.xml inside the OOXML
// container. Paragraph boundaries become newlines; tabs and explicit breaks
// are preserved.
func (e *Extractor) extractDOCX(path string) (Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return Result{Method: "docx-xml"}, fmt.Errorf("open docx container: %w", err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			e.logger.Warn("docx container close error", "path", path, "error", cerr)
		}
	}()

	var doc *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return Result{Method: "docx-xml"}, fmt.Errorf("docx missing word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return Result{Method: "docx-xml"}, fmt.Errorf("open document.xml: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	text, err := decodeDocumentXML(rc)
	if err != nil {
		return Result{Method: "docx-xml"}, err
	}
	return Result{Text: text, Method: "docx-xml", Pages: 1}, nil
}

func decodeDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	var inText bool
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
