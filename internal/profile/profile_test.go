package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `role: Помощник
language: русский
rules:
  - Правило первое
  - Правило второе
workflows:
  отчёт:
    - шаг один
personality:
  style: деловой
greetings:
  - Привет!
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Role != "Помощник" || len(p.Rules) != 2 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if p.Source != path {
		t.Fatalf("unexpected source: %q", p.Source)
	}
}

func TestLoadJSON(t *testing.T) {
	// JSON is a YAML subset, so rules.json files from older setups load
	// unchanged.
	path := filepath.Join(t.TempDir(), "rules.json")
	content := `{"role": "Помощник", "language": "русский", "rules": ["Правило"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Role != "Помощник" {
		t.Fatalf("unexpected role: %q", p.Role)
	}
}

func TestLoadRejectsIncompleteProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("role: Помощник\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestSystemPrompt(t *testing.T) {
	p := &Profile{
		Role:     "Помощник по документам",
		Language: "русский",
		Rules:    []string{"Отвечай кратко"},
		Workflows: map[string][]string{
			"создание_документа": {"1. Найди шаблон"},
		},
		Personality: &Personality{Style: "деловой"},
	}

	prompt := p.SystemPrompt()
	for _, want := range []string{
		"Помощник по документам",
		"Правила работы:",
		"- Отвечай кратко",
		"Создание Документа:",
		"1. Найди шаблон",
		"Стиль общения: деловой",
		"Тон: помогающий",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSystemPromptStableWorkflowOrder(t *testing.T) {
	p := &Profile{
		Role:     "Помощник",
		Language: "русский",
		Rules:    []string{"r"},
		Workflows: map[string][]string{
			"b_flow": {"x"},
			"a_flow": {"y"},
		},
	}

	first := p.SystemPrompt()
	for i := 0; i < 10; i++ {
		if p.SystemPrompt() != first {
			t.Fatalf("prompt not deterministic")
		}
	}
	if strings.Index(first, "A Flow") > strings.Index(first, "B Flow") {
		t.Fatalf("workflows not in name order:\n%s", first)
	}
}

func TestBuiltin(t *testing.T) {
	p := Builtin()
	if err := p.Validate(); err != nil {
		t.Fatalf("builtin profile invalid: %v", err)
	}
	if p.Source != "builtin" {
		t.Fatalf("unexpected source: %q", p.Source)
	}
	if p.Greeting() == "" {
		t.Fatalf("builtin profile must have greetings")
	}
}
