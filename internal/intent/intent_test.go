package intent

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Kind
	}{
		{"", KindEmpty},
		{"   ", KindEmpty},
		{"выход", KindExit},
		{"ВЫХОД", KindExit},
		{"exit", KindExit},
		{"q", KindExit},
		{"помощь", KindHelp},
		{"help", KindHelp},
		{"статус", KindStatus},
		{"status", KindStatus},
		{"создай докладную записку", KindMemo},
		{"нужна докладная", KindMemo},
		{"draft a memo", KindMemo},
		{"прочитай файл отчёт.docx", KindReadDocument},
		{"read file report.docx", KindReadDocument},
		{"какая сегодня погода?", KindAsk},
		{"statusy report please", KindAsk},
	}

	for _, tc := range cases {
		got := Parse(tc.input)
		if got.Kind != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.input, got.Kind, tc.want)
		}
	}
}

func TestParseReadDocumentPath(t *testing.T) {
	cmd := Parse("Прочитай файл output/отчёт.docx")
	if cmd.Kind != KindReadDocument {
		t.Fatalf("unexpected kind: %v", cmd.Kind)
	}
	if cmd.Path != "output/отчёт.docx" {
		t.Fatalf("unexpected path: %q", cmd.Path)
	}

	cmd = Parse("прочитай файл")
	if cmd.Kind != KindReadDocument || cmd.Path != "" {
		t.Fatalf("expected empty path, got %+v", cmd)
	}
}

func TestParseAskKeepsOriginalText(t *testing.T) {
	cmd := Parse("  Составь План На Неделю  ")
	if cmd.Kind != KindAsk {
		t.Fatalf("unexpected kind: %v", cmd.Kind)
	}
	if cmd.Text != "Составь План На Неделю" {
		t.Fatalf("unexpected text: %q", cmd.Text)
	}
}
