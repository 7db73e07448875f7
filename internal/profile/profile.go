// Package profile loads the agent profile: the role, rules, workflows and
// personality that shape the system prompt.
package profile

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile describes how the agent presents itself and what rules it
// follows. Loaded from a YAML (or JSON, which YAML subsumes) file.
type Profile struct {
	Role        string              `yaml:"role" json:"role"`
	Language    string              `yaml:"language" json:"language"`
	Rules       []string            `yaml:"rules" json:"rules"`
	Workflows   map[string][]string `yaml:"workflows,omitempty" json:"workflows,omitempty"`
	Personality *Personality        `yaml:"personality,omitempty" json:"personality,omitempty"`
	Greetings   []string            `yaml:"greetings,omitempty" json:"greetings,omitempty"`

	// Source is the file the profile came from, or "builtin".
	Source string `yaml:"-" json:"-"`
}

// Personality tunes the agent's register.
type Personality struct {
	Style    string `yaml:"style" json:"style"`
	Tone     string `yaml:"tone" json:"tone"`
	Approach string `yaml:"approach" json:"approach"`
}

// Load reads a profile from path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	p.Source = path

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Validate checks the required fields.
func (p *Profile) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Role) == "" {
		problems = append(problems, "role is required")
	}
	if strings.TrimSpace(p.Language) == "" {
		problems = append(problems, "language is required")
	}
	if len(p.Rules) == 0 {
		problems = append(problems, "at least one rule is required")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// SystemPrompt assembles the system message from the profile sections.
// Workflows are emitted in name order so the prompt is stable run to run.
func (p *Profile) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString(p.Role)

	if len(p.Rules) > 0 {
		sb.WriteString("\n\nПравила работы:\n")
		for _, rule := range p.Rules {
			sb.WriteString("- ")
			sb.WriteString(rule)
			sb.WriteString("\n")
		}
	}

	if len(p.Workflows) > 0 {
		names := make([]string, 0, len(p.Workflows))
		for name := range p.Workflows {
			names = append(names, name)
		}
		sort.Strings(names)

		sb.WriteString("\nРабочие процессы:\n")
		for _, name := range names {
			sb.WriteString(workflowTitle(name))
			sb.WriteString(":\n")
			for _, step := range p.Workflows[name] {
				sb.WriteString("  ")
				sb.WriteString(step)
				sb.WriteString("\n")
			}
		}
	}

	if p.Personality != nil {
		sb.WriteString("\nСтиль общения: ")
		sb.WriteString(orDefault(p.Personality.Style, "профессиональный"))
		sb.WriteString("\nТон: ")
		sb.WriteString(orDefault(p.Personality.Tone, "помогающий"))
		sb.WriteString("\nПодход: ")
		sb.WriteString(orDefault(p.Personality.Approach, "методичный"))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Greeting picks one of the configured greetings, or returns an empty
// string when none are configured.
func (p *Profile) Greeting() string {
	if len(p.Greetings) == 0 {
		return ""
	}
	return p.Greetings[rand.Intn(len(p.Greetings))]
}

func workflowTitle(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.Join(words, " ")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
