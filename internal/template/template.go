// Package template implements placeholder inspection and substitution for
// .docx templates.
//
// A placeholder is a {{ identifier }} marker in paragraph text. Whitespace
// around the identifier is ignored; the identifier charset is
// [A-Za-z0-9_]+. Single-brace or otherwise malformed markers are ordinary
// text and never match.
package template

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/docflow-ai/docflow/internal/docx"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Inspect returns the distinct placeholder identifiers in the template at
// path, in first-occurrence order. The scan is read-only and recomputed on
// every call.
func Inspect(path string) ([]string, error) {
	paragraphs, err := readTemplate(path)
	if err != nil {
		return nil, err
	}
	return scanVariables(paragraphs), nil
}

// RenderOptions control substitution policy.
type RenderOptions struct {
	// Strict fails the render when any placeholder has no value instead
	// of leaving it verbatim.
	Strict bool

	// Overwrite allows replacing an existing file at the output path.
	Overwrite bool
}

// Render substitutes placeholders in the template at path with values from
// ctx and writes the result to outPath. Placeholders without a matching key
// stay verbatim unless opts.Strict is set, in which case Render fails with
// *MissingVariableError and writes nothing. Extra keys in ctx are ignored.
func Render(path string, ctx map[string]string, outPath string, opts RenderOptions) error {
	paragraphs, err := readTemplate(path)
	if err != nil {
		return err
	}

	if opts.Strict {
		var missing []string
		for _, name := range scanVariables(paragraphs) {
			if _, ok := ctx[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return &MissingVariableError{Names: missing}
		}
	}

	rendered := make([]string, len(paragraphs))
	for i, text := range paragraphs {
		rendered[i] = substitute(text, ctx)
	}

	if !opts.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return &WriteError{Path: outPath, Err: os.ErrExist}
		}
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: outPath, Err: err}
		}
	}
	if err := docx.Write(outPath, rendered); err != nil {
		return &WriteError{Path: outPath, Err: err}
	}
	return nil
}

// Report is the result of validating a template.
type Report struct {
	// Variables is the template's VariableSet in first-occurrence order.
	Variables []string

	// Valid is true when the template parsed and contains at least one
	// placeholder.
	Valid bool
}

// Validate reports whether the template at path is parseable and contains
// at least one placeholder.
func Validate(path string) (Report, error) {
	variables, err := Inspect(path)
	if err != nil {
		return Report{}, err
	}
	return Report{Variables: variables, Valid: len(variables) > 0}, nil
}

func readTemplate(path string) ([]string, error) {
	paragraphs, err := docx.Read(path)
	switch {
	case err == nil:
		return paragraphs, nil
	case errors.Is(err, docx.ErrNotFound):
		return nil, &NotFoundError{Path: path}
	default:
		return nil, &FormatError{Path: path, Err: err}
	}
}

func scanVariables(paragraphs []string) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, text := range paragraphs {
		for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
			name := match[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func substitute(text string, ctx map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := ctx[name]
		if !ok {
			return match
		}
		return value
	})
}
