package agent

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/docflow-ai/docflow/internal/docx"
	"github.com/docflow-ai/docflow/internal/llm"
	"github.com/docflow-ai/docflow/internal/profile"
	"github.com/docflow-ai/docflow/internal/tools"
)

type fakeClient struct {
	reply string
	err   error
	calls [][]llm.Message
}

func (f *fakeClient) Chat(_ context.Context, messages []llm.Message) (string, error) {
	copied := make([]llm.Message, len(messages))
	copy(copied, messages)
	f.calls = append(f.calls, copied)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestSession(t *testing.T, input string, client llm.Client) (*Session, *bytes.Buffer, string) {
	t.Helper()
	base := t.TempDir()
	templatesDir := filepath.Join(base, "templates")
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	toolset := tools.New(tools.Options{
		TemplatesDir: templatesDir,
		OutputDir:    filepath.Join(base, "output"),
		Logger:       zerolog.Nop(),
	})

	out := &bytes.Buffer{}
	session, err := New(Options{
		Profile: profile.Builtin(),
		Client:  client,
		Tools:   toolset,
		Logger:  zerolog.Nop(),
		Input:   strings.NewReader(input),
		Output:  out,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return session, out, templatesDir
}

func TestSessionExit(t *testing.T) {
	session, out, _ := newTestSession(t, "выход\n", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "До свидания") {
		t.Fatalf("missing farewell: %s", out.String())
	}
}

func TestSessionEndsOnEOF(t *testing.T) {
	session, _, _ := newTestSession(t, "", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestSessionHelpAndStatus(t *testing.T) {
	session, out, _ := newTestSession(t, "помощь\nстатус\nвыход\n", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Доступные команды") {
		t.Fatalf("missing help: %s", text)
	}
	if !strings.Contains(text, "Статус сессии") {
		t.Fatalf("missing status: %s", text)
	}
}

func TestSessionAsk(t *testing.T) {
	client := &fakeClient{reply: "Сегодня пятница."}
	session, out, _ := newTestSession(t, "какой сегодня день?\nвыход\n", client)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Агент: Сегодня пятница.") {
		t.Fatalf("missing reply: %s", out.String())
	}

	if len(client.calls) != 1 {
		t.Fatalf("expected 1 llm call, got %d", len(client.calls))
	}
	messages := client.calls[0]
	if messages[0].Role != llm.RoleSystem || !strings.Contains(messages[0].Content, "Правила работы") {
		t.Fatalf("system prompt missing: %+v", messages[0])
	}
	if messages[len(messages)-1].Content != "какой сегодня день?" {
		t.Fatalf("unexpected user message: %+v", messages[len(messages)-1])
	}
}

func TestSessionAskFailureDropsTurn(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	session, out, _ := newTestSession(t, "вопрос\nвторой вопрос\nвыход\n", client)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Ошибка при обращении к модели") {
		t.Fatalf("missing error output: %s", out.String())
	}
	// The failed first turn must not leak into the second call's history.
	second := client.calls[1]
	for _, msg := range second[:len(second)-1] {
		if msg.Content == "вопрос" {
			t.Fatalf("failed turn kept in history: %+v", second)
		}
	}
}

func TestSessionAskWithoutClient(t *testing.T) {
	session, out, _ := newTestSession(t, "вопрос\nвыход\n", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Языковая модель не настроена") {
		t.Fatalf("missing hint: %s", out.String())
	}
}

func TestSessionMemoWorkflow(t *testing.T) {
	input := "создай докладную записку\nСлужебная необходимость.\nвыход\n"
	session, out, templatesDir := newTestSession(t, input, nil)

	templatePath := filepath.Join(templatesDir, "докладная записка.docx")
	if err := docx.Write(templatePath, []string{"Докладная записка", "{{ text }}"}); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Документ создан:") {
		t.Fatalf("missing result: %s", text)
	}

	line := text[strings.Index(text, "Документ создан:"):]
	path := strings.TrimSpace(strings.TrimPrefix(firstLine(line), "Документ создан:"))
	paragraphs, err := docx.Read(path)
	if err != nil {
		t.Fatalf("read generated doc: %v", err)
	}
	if paragraphs[1] != "Служебная необходимость." {
		t.Fatalf("unexpected memo text: %#v", paragraphs)
	}
}

func TestSessionMemoEmptyTextCancels(t *testing.T) {
	session, out, _ := newTestSession(t, "докладная\n\nвыход\n", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "операция отменена") {
		t.Fatalf("missing cancellation: %s", out.String())
	}
}

func TestSessionReadDocument(t *testing.T) {
	docPath := filepath.Join(t.TempDir(), "письмо.docx")
	if err := docx.Write(docPath, []string{"Первая строка", "Вторая строка"}); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	session, out, _ := newTestSession(t, "прочитай файл "+docPath+"\nвыход\n", nil)
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Первая строка\nВторая строка") {
		t.Fatalf("missing document text: %s", out.String())
	}
}
