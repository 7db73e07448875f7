// Package cli provides tests for CLI helpers.
package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseSetFlags(t *testing.T) {
	vars, err := parseSetFlags([]string{"name=Анна", "id=42", "note=a=b"})
	if err != nil {
		t.Fatalf("parseSetFlags: %v", err)
	}
	if vars["name"] != "Анна" || vars["id"] != "42" {
		t.Fatalf("unexpected vars: %#v", vars)
	}
	// Only the first = splits; the rest belongs to the value.
	if vars["note"] != "a=b" {
		t.Fatalf("unexpected note value: %q", vars["note"])
	}

	if _, err := parseSetFlags([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for flag without =")
	}
	if _, err := parseSetFlags([]string{"=oops"}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"TIME", "TYPE"}, [][]string{
		{"12:00", "document.generated"},
		{"12:01", "file.copied"},
	})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "TIME") {
		t.Fatalf("expected header first, got %q", lines[0])
	}
}

func TestFormatYesNo(t *testing.T) {
	if formatYesNo(true) != "yes" || formatYesNo(false) != "no" {
		t.Fatalf("unexpected formatYesNo output")
	}
}

func TestIsNonInteractiveEnv(t *testing.T) {
	t.Setenv("DOCFLOW_NON_INTERACTIVE", "1")
	if !IsNonInteractive() {
		t.Fatalf("expected non-interactive with env set")
	}
}

func TestPreflightErrorMessage(t *testing.T) {
	err := &PreflightError{Message: "chat needs a terminal", Hint: "stdin is a pipe", NextStep: "docflow serve"}
	text := err.Error()
	for _, want := range []string{"chat needs a terminal", "hint: stdin is a pipe", "next: docflow serve"} {
		if !strings.Contains(text, want) {
			t.Fatalf("error text missing %q: %q", want, text)
		}
	}
}
