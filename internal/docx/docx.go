// Package docx reads and writes the paragraph text of .docx documents.
//
// The package implements the minimal slice of the OOXML container the rest
// of Docflow needs: read all paragraph text, write a document from text,
// append a paragraph. Run-level formatting is flattened on read and not
// preserved on write.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Codec errors.
var (
	ErrNotFound  = errors.New("document not found")
	ErrNotDocx   = errors.New("not a .docx file")
	ErrMalformed = errors.New("malformed document")
)

const documentPart = "word/document.xml"

type xmlDocument struct {
	Body xmlBody `xml:"body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlParagraph struct {
	Runs       []xmlRun       `xml:"r"`
	Hyperlinks []xmlHyperlink `xml:"hyperlink"`
}

type xmlHyperlink struct {
	Runs []xmlRun `xml:"r"`
}

type xmlRun struct {
	Text []string `xml:"t"`
}

func (p xmlParagraph) text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Text {
			sb.WriteString(t)
		}
	}
	for _, link := range p.Hyperlinks {
		for _, run := range link.Runs {
			for _, t := range run.Text {
				sb.WriteString(t)
			}
		}
	}
	return sb.String()
}

// Read returns the text of every paragraph in the document, in order.
// Run boundaries within a paragraph are concatenated away.
func Read(path string) ([]string, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	defer reader.Close()

	var part *zip.File
	for _, file := range reader.File {
		if file.Name == documentPart {
			part = file
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("%w: %s: missing %s", ErrMalformed, path, documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	paragraphs := make([]string, 0, len(doc.Body.Paragraphs))
	for _, p := range doc.Body.Paragraphs {
		paragraphs = append(paragraphs, p.text())
	}
	return paragraphs, nil
}

// Write creates a document at path containing one paragraph per entry.
// An existing file at path is overwritten.
func Write(path string, paragraphs []string) error {
	if !hasDocxExt(path) {
		return fmt.Errorf("%w: %s", ErrNotDocx, path)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	archive := zip.NewWriter(file)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPart, documentXML(paragraphs)},
	}
	for _, part := range parts {
		w, err := archive.Create(part.name)
		if err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			file.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := archive.Close(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// Create writes a new document with a single paragraph, or an empty body
// when text is empty.
func Create(path, text string) error {
	paragraphs := []string{}
	if text != "" {
		paragraphs = append(paragraphs, text)
	}
	return Write(path, paragraphs)
}

// Append rewrites the document at path with one more paragraph at the end.
func Append(path, text string) error {
	paragraphs, err := Read(path)
	if err != nil {
		return err
	}
	return Write(path, append(paragraphs, text))
}

func checkPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return err
	}
	if !hasDocxExt(path) {
		return fmt.Errorf("%w: %s", ErrNotDocx, path)
	}
	return nil
}

func hasDocxExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".docx")
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>
`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>
`

func documentXML(paragraphs []string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, text := range paragraphs {
		if text == "" {
			sb.WriteString(`<w:p/>`)
			continue
		}
		sb.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		sb.WriteString(escapeText(text))
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	sb.WriteString(`<w:sectPr/></w:body></w:document>`)
	return sb.String()
}

func escapeText(text string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never fails.
	_ = xml.EscapeText(&buf, []byte(text))
	return buf.String()
}
