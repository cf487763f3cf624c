package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/fetch"
)

// Format identifies a supported document type.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatHTML     Format = "html"
)

var extensions = map[string]Format{
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatMarkdown,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTagRe        = regexp.MustCompile(`<[^>]+>`)
)

// Document is the cleaned text of one source plus its provenance.
type Document struct {
	Name     string
	Text     string
	Metadata *Metadata
}

// DetectFormat maps a file name to its format by extension.
func DetectFormat(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// ExtractText returns the cleaned plain text of a document held in memory.
// A document that parses but holds no text, such as a scanned PDF, yields "".
func ExtractText(name string, data []byte) (string, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return "", err
	}

	var raw string
	switch format {
	case FormatText, FormatMarkdown:
		raw = strings.ToValidUTF8(string(data), "�")
	case FormatPDF:
		raw, err = extractPDF(data)
	case FormatDOCX:
		raw, err = extractDOCX(data)
	case FormatHTML:
		raw, err = fetch.HTMLToText(string(data))
	}
	if err != nil {
		return "", &ExtractionError{Name: name, Format: format, Cause: err}
	}
	return CleanText(raw), nil
}

func extractPDF(data []byte) (text string, err error) {
	// the PDF reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText turns WordprocessingML into text, one paragraph per line.
func docxXMLToText(xml string) string {
	text := docxParagraphRe.ReplaceAllStringFunc(xml, func(tag string) string {
		if tag == "<w:tab/>" {
			return " "
		}
		return "\n"
	})
	text = xmlTagRe.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// LoadFile reads and extracts a document from disk.
func LoadFile(path string) (*Document, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := ExtractText(path, data)
	if err != nil {
		return nil, err
	}

	format, _ := DetectFormat(path)
	meta := NewMetadata(text, path)
	meta.Format = string(format)
	return &Document{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Text:     text,
		Metadata: meta,
	}, nil
}

// ListDocuments returns the supported files directly inside dir, sorted by name.
// Hidden files and Word lock files are skipped.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
			continue
		}
		if _, err := DetectFormat(name); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
