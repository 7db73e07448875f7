// Package agent runs the conversational session: read a line, classify it,
// execute a tool or ask the LLM, repeat. Commands run strictly one at a
// time; the loop never reads the next line before the current command
// finished.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docflow-ai/docflow/internal/history"
	"github.com/docflow-ai/docflow/internal/intent"
	"github.com/docflow-ai/docflow/internal/llm"
	"github.com/docflow-ai/docflow/internal/profile"
	"github.com/docflow-ai/docflow/internal/tools"
)

const defaultMemoTemplate = "докладная записка.docx"

// Options configure a Session. Profile and Tools are required; Client may
// be nil, in which case free-form questions are rejected with a hint.
type Options struct {
	Profile *profile.Profile
	Client  llm.Client
	Tools   *tools.Toolset
	History *history.Repository
	Logger  zerolog.Logger

	Input  io.Reader
	Output io.Writer

	// LLMTimeout bounds a single chat call. Defaults to a minute.
	LLMTimeout time.Duration

	// MemoTemplate is the template name for the memo workflow.
	MemoTemplate string
}

// Session is one interactive conversation.
type Session struct {
	profile      *profile.Profile
	client       llm.Client
	tools        *tools.Toolset
	history      *history.Repository
	logger       zerolog.Logger
	scanner      *bufio.Scanner
	out          io.Writer
	llmTimeout   time.Duration
	memoTemplate string

	messages  []llm.Message
	startedAt time.Time
}

// New creates a Session.
func New(opts Options) (*Session, error) {
	if opts.Profile == nil {
		return nil, errors.New("profile is required")
	}
	if opts.Tools == nil {
		return nil, errors.New("toolset is required")
	}
	if opts.Input == nil || opts.Output == nil {
		return nil, errors.New("input and output are required")
	}
	if opts.LLMTimeout == 0 {
		opts.LLMTimeout = time.Minute
	}
	if opts.MemoTemplate == "" {
		opts.MemoTemplate = defaultMemoTemplate
	}

	return &Session{
		profile:      opts.Profile,
		client:       opts.Client,
		tools:        opts.Tools,
		history:      opts.History,
		logger:       opts.Logger.With().Str("component", "agent").Logger(),
		scanner:      bufio.NewScanner(opts.Input),
		out:          opts.Output,
		llmTimeout:   opts.LLMTimeout,
		memoTemplate: opts.MemoTemplate,
		messages: []llm.Message{
			{Role: llm.RoleSystem, Content: opts.Profile.SystemPrompt()},
		},
	}, nil
}

// Run executes the session loop until the user exits, input ends or the
// context is canceled.
func (s *Session) Run(ctx context.Context) error {
	s.startedAt = time.Now()
	s.record(ctx, &history.Event{Type: history.EventTypeSessionStarted, Detail: s.profile.Source})
	defer s.record(context.WithoutCancel(ctx), &history.Event{Type: history.EventTypeSessionEnded})

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line, ok := s.prompt("Вы: ")
		if !ok {
			return nil
		}

		cmd := intent.Parse(line)
		switch cmd.Kind {
		case intent.KindEmpty:
			continue
		case intent.KindExit:
			fmt.Fprintln(s.out, "До свидания! Удачной работы с документами.")
			return nil
		case intent.KindHelp:
			s.printHelp()
		case intent.KindStatus:
			s.printStatus(ctx)
		case intent.KindReadDocument:
			s.readDocument(cmd.Path)
		case intent.KindMemo:
			s.runMemo(ctx)
		case intent.KindAsk:
			s.ask(ctx, cmd.Text)
		}
	}
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, "\n"+label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "\nДоступные команды:")
	fmt.Fprintln(s.out, "  помощь              — этот список")
	fmt.Fprintln(s.out, "  статус              — информация о сессии")
	fmt.Fprintln(s.out, "  прочитай файл <путь> — показать текст .docx файла")
	fmt.Fprintln(s.out, "  докладная записка   — создать докладную записку по шаблону")
	fmt.Fprintln(s.out, "  выход               — завершить работу")
	fmt.Fprintln(s.out, "Любой другой запрос отправляется языковой модели.")
}

func (s *Session) printStatus(ctx context.Context) {
	fmt.Fprintln(s.out, "\nСтатус сессии:")
	fmt.Fprintf(s.out, "  Роль: %s\n", firstLine(s.profile.Role))
	fmt.Fprintf(s.out, "  Время работы: %s\n", time.Since(s.startedAt).Round(time.Second))
	fmt.Fprintf(s.out, "  Сообщений в диалоге: %d\n", len(s.messages)-1)

	if s.history == nil {
		return
	}
	events, err := s.history.List(ctx, history.Query{Limit: 5})
	if err != nil {
		s.logger.Warn().Err(err).Msg("history list failed")
		return
	}
	if len(events) > 0 {
		fmt.Fprintln(s.out, "  Последние операции:")
		for _, event := range events {
			fmt.Fprintf(s.out, "    %s  %s %s\n", event.Timestamp.Local().Format("15:04:05"), event.Type, event.Path)
		}
	}
}

func (s *Session) readDocument(path string) {
	if strings.TrimSpace(path) == "" {
		line, ok := s.prompt("Путь к файлу: ")
		if !ok {
			return
		}
		path = strings.TrimSpace(line)
		if path == "" {
			fmt.Fprintln(s.out, "Путь не указан, операция отменена.")
			return
		}
	}

	text, err := s.tools.ReadDocument(path)
	if err != nil {
		fmt.Fprintf(s.out, "Не удалось прочитать файл: %v\n", err)
		return
	}
	if text == "" {
		text = "(документ пуст)"
	}
	fmt.Fprintf(s.out, "\nСодержимое файла %s:\n%s\n", path, text)
}

func (s *Session) runMemo(ctx context.Context) {
	fmt.Fprintln(s.out, "\nСоздание докладной записки.")
	line, ok := s.prompt("Введите основной текст: ")
	if !ok {
		return
	}
	text := strings.TrimSpace(line)
	if text == "" {
		fmt.Fprintln(s.out, "Текст не может быть пустым, операция отменена.")
		return
	}

	path, err := s.tools.GenerateDocument(ctx, s.memoTemplate, map[string]string{"text": text}, "докладная_записка.docx", false)
	if err != nil {
		fmt.Fprintf(s.out, "Ошибка при создании докладной записки: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Документ создан: %s\n", path)
}

func (s *Session) ask(ctx context.Context, text string) {
	if s.client == nil {
		fmt.Fprintln(s.out, "Языковая модель не настроена. Задайте DOCFLOW_LLM_CREDENTIALS и перезапустите.")
		return
	}

	s.messages = append(s.messages, llm.Message{Role: llm.RoleUser, Content: text})
	fmt.Fprintln(s.out, "\nАнализирую запрос...")

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.client.Chat(llmCtx, s.messages)
	if err != nil {
		// Keep the failed turn out of the history so a retry is clean.
		s.messages = s.messages[:len(s.messages)-1]
		s.logger.Error().Err(err).Msg("llm request failed")
		if errors.Is(err, context.DeadlineExceeded) {
			fmt.Fprintln(s.out, "Запрос занял слишком много времени. Попробуйте упростить задачу.")
			return
		}
		fmt.Fprintf(s.out, "Ошибка при обращении к модели: %v\n", err)
		return
	}

	s.messages = append(s.messages, llm.Message{Role: llm.RoleAssistant, Content: reply})
	fmt.Fprintf(s.out, "\nАгент: %s\n", reply)
}

func (s *Session) record(ctx context.Context, event *history.Event) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(ctx, event); err != nil {
		s.logger.Warn().Err(err).Msg("history append failed")
	}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
