// Package intent turns raw user input into a typed command, decoupling
// keyword recognition from the tools that execute each command.
package intent

import "strings"

// Kind identifies the command variant.
type Kind int

const (
	// KindAsk routes the input to the LLM backend.
	KindAsk Kind = iota
	// KindEmpty is blank input; the loop just re-prompts.
	KindEmpty
	KindHelp
	KindStatus
	KindExit
	// KindReadDocument reads a .docx file aloud; Path may be empty, in
	// which case the session prompts for it.
	KindReadDocument
	// KindMemo starts the memo workflow (докладная записка).
	KindMemo
)

// Command is the parsed form of one line of user input.
type Command struct {
	Kind Kind

	// Path carries the file path for KindReadDocument.
	Path string

	// Text carries the original input for KindAsk.
	Text string
}

var exitWords = map[string]bool{
	"выход": true,
	"exit":  true,
	"quit":  true,
	"q":     true,
}

var helpWords = map[string]bool{
	"помощь": true,
	"help":   true,
}

var statusWords = map[string]bool{
	"статус": true,
	"status": true,
}

var readPrefixes = []string{
	"прочитай файл",
	"read file",
}

// Stems rather than full words so the inflected forms match too
// ("докладную записку" and so on).
var memoWords = []string{
	"докладн",
	"записк",
	"memo",
}

// Parse classifies one line of user input. Anything not recognized as a
// local command becomes KindAsk for the LLM.
func Parse(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Kind: KindEmpty}
	}

	lower := strings.ToLower(trimmed)
	switch {
	case exitWords[lower]:
		return Command{Kind: KindExit}
	case helpWords[lower]:
		return Command{Kind: KindHelp}
	case statusWords[lower]:
		return Command{Kind: KindStatus}
	}

	for _, prefix := range readPrefixes {
		if strings.HasPrefix(lower, prefix) {
			path := strings.TrimSpace(trimmed[len(prefix):])
			return Command{Kind: KindReadDocument, Path: path}
		}
	}

	for _, word := range memoWords {
		if strings.Contains(lower, word) {
			return Command{Kind: KindMemo}
		}
	}

	return Command{Kind: KindAsk, Text: trimmed}
}
