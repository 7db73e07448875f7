// Package tools bundles the document and filesystem operations behind one
// value the agent loop and the MCP server both call. Every mutating
// operation is logged and recorded in the history log when one is
// configured.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docflow-ai/docflow/internal/docx"
	"github.com/docflow-ai/docflow/internal/fsops"
	"github.com/docflow-ai/docflow/internal/history"
	"github.com/docflow-ai/docflow/internal/template"
)

// Options configure a Toolset.
type Options struct {
	// TemplatesDir is where relative template names are resolved.
	TemplatesDir string

	// OutputDir is where relative output names are placed.
	OutputDir string

	Logger zerolog.Logger

	// History records tool activity when non-nil.
	History *history.Repository
}

// Toolset executes the agent's tools.
type Toolset struct {
	templatesDir string
	outputDir    string
	logger       zerolog.Logger
	history      *history.Repository
}

// New creates a Toolset.
func New(opts Options) *Toolset {
	return &Toolset{
		templatesDir: opts.TemplatesDir,
		outputDir:    opts.OutputDir,
		logger:       opts.Logger.With().Str("component", "tools").Logger(),
		history:      opts.History,
	}
}

// ResolveTemplate expands a bare template name against the templates
// directory. Absolute paths and paths with separators pass through.
func (t *Toolset) ResolveTemplate(name string) string {
	if t.templatesDir == "" || filepath.IsAbs(name) || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(t.templatesDir, name)
}

// GenerateDocument renders templatePath with vars into a uniquely named
// document derived from outputPath (base_YYYYMMDD_HHMMSS.ext) and returns
// the final path.
func (t *Toolset) GenerateDocument(ctx context.Context, templatePath string, vars map[string]string, outputPath string, strict bool) (string, error) {
	resolved := t.ResolveTemplate(templatePath)
	finalPath := t.timestampedPath(outputPath)

	err := template.Render(resolved, vars, finalPath, template.RenderOptions{Strict: strict})
	if err != nil {
		t.logger.Error().Err(err).Str("template", resolved).Msg("document generation failed")
		return "", err
	}

	t.logger.Info().Str("template", resolved).Str("path", finalPath).Msg("document generated")
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	payload, _ := json.Marshal(history.GeneratedPayload{Template: resolved, Variables: names, Strict: strict})
	t.record(ctx, &history.Event{
		Type:    history.EventTypeDocumentGenerated,
		Path:    finalPath,
		Detail:  fmt.Sprintf("из шаблона %s", resolved),
		Payload: payload,
	})
	return finalPath, nil
}

// TemplateVariables returns the placeholder names of a template in
// first-occurrence order.
func (t *Toolset) TemplateVariables(templatePath string) ([]string, error) {
	return template.Inspect(t.ResolveTemplate(templatePath))
}

// ValidateTemplate reports whether a template parses and has placeholders.
func (t *Toolset) ValidateTemplate(templatePath string) (template.Report, error) {
	return template.Validate(t.ResolveTemplate(templatePath))
}

// ReadDocument returns the non-empty paragraph text of a document joined
// with newlines.
func (t *Toolset) ReadDocument(path string) (string, error) {
	paragraphs, err := docx.Read(path)
	if err != nil {
		return "", err
	}
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n"), nil
}

// CreateDocument writes a new document with the given text.
func (t *Toolset) CreateDocument(ctx context.Context, path, text string) error {
	if err := docx.Create(path, text); err != nil {
		return err
	}
	t.logger.Info().Str("path", path).Msg("document created")
	t.record(ctx, &history.Event{Type: history.EventTypeDocumentCreated, Path: path})
	return nil
}

// AppendDocument adds a paragraph to an existing document.
func (t *Toolset) AppendDocument(ctx context.Context, path, text string) error {
	if err := docx.Append(path, text); err != nil {
		return err
	}
	t.logger.Info().Str("path", path).Msg("document appended")
	t.record(ctx, &history.Event{Type: history.EventTypeDocumentAppended, Path: path})
	return nil
}

// ListFiles lists directory entries. An empty dir means the current one.
func (t *Toolset) ListFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	return fsops.List(dir)
}

// CopyFile copies a file; directory destinations get the source base name.
func (t *Toolset) CopyFile(ctx context.Context, src, dst string) (string, error) {
	dest, err := fsops.CopyFile(src, dst)
	if err != nil {
		return "", err
	}
	t.logger.Info().Str("src", src).Str("dest", dest).Msg("file copied")
	t.record(ctx, &history.Event{Type: history.EventTypeFileCopied, Path: dest, Detail: "из " + src})
	return dest, nil
}

// MoveFile moves a file; directory destinations get the source base name.
func (t *Toolset) MoveFile(ctx context.Context, src, dst string) (string, error) {
	dest, err := fsops.MoveFile(src, dst)
	if err != nil {
		return "", err
	}
	t.logger.Info().Str("src", src).Str("dest", dest).Msg("file moved")
	t.record(ctx, &history.Event{Type: history.EventTypeFileMoved, Path: dest, Detail: "из " + src})
	return dest, nil
}

// DeleteFile removes a file.
func (t *Toolset) DeleteFile(ctx context.Context, path string) error {
	if err := fsops.DeleteFile(path); err != nil {
		return err
	}
	t.logger.Info().Str("path", path).Msg("file deleted")
	t.record(ctx, &history.Event{Type: history.EventTypeFileDeleted, Path: path})
	return nil
}

// CreateFolder creates a folder with any missing parents.
func (t *Toolset) CreateFolder(ctx context.Context, path string) error {
	if err := fsops.CreateDir(path); err != nil {
		return err
	}
	t.logger.Info().Str("path", path).Msg("folder created")
	t.record(ctx, &history.Event{Type: history.EventTypeFolderCreated, Path: path})
	return nil
}

// DeleteFolder removes a folder and its contents.
func (t *Toolset) DeleteFolder(ctx context.Context, path string) error {
	if err := fsops.DeleteDir(path); err != nil {
		return err
	}
	t.logger.Info().Str("path", path).Msg("folder deleted")
	t.record(ctx, &history.Event{Type: history.EventTypeFolderDeleted, Path: path})
	return nil
}

// timestampedPath derives the unique output name: base_YYYYMMDD_HHMMSS.ext
// under the output dir for relative paths. Missing extensions default to
// .docx.
func (t *Toolset) timestampedPath(outputPath string) string {
	if t.outputDir != "" && !filepath.IsAbs(outputPath) && !strings.ContainsRune(outputPath, filepath.Separator) {
		outputPath = filepath.Join(t.outputDir, outputPath)
	}
	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)
	if ext == "" {
		ext = ".docx"
	}
	return fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
}

func (t *Toolset) record(ctx context.Context, event *history.Event) {
	if t.history == nil {
		return
	}
	if err := t.history.Append(ctx, event); err != nil {
		t.logger.Warn().Err(err).Str("type", string(event.Type)).Msg("history append failed")
	}
}
