package template

import (
	"fmt"
	"strings"
)

// NotFoundError reports a template path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Path)
}

// FormatError reports a template that could not be parsed into paragraphs.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unreadable template %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError reports a rendered document that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// MissingVariableError reports placeholders left unresolved in strict mode.
// Names are in first-occurrence order.
type MissingVariableError struct {
	Names []string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing variables: %s", strings.Join(e.Names, ", "))
}
