// Package cli implements the docflow command tree.
package cli

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/config"
	"github.com/docflow-ai/docflow/internal/history"
	"github.com/docflow-ai/docflow/internal/tools"
)

var (
	cfgFile        string
	verbose        bool
	nonInteractive bool

	// cfg is built once in the root PersistentPreRunE and threaded into
	// every collaborator from there.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docflow",
	Short: "Conversational document automation agent",
	Long: `Docflow is a conversational agent for document automation.

It fills .docx templates with {{ placeholder }} variables, manages files
and folders, and routes free-form requests to a GigaChat backend. The same
tools are available non-interactively as subcommands and over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.config/docflow/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead of asking")
}

// Execute runs the docflow CLI.
func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version
	return rootCmd.ExecuteContext(ctx)
}

// PreflightError is a user-facing startup failure with a hint on how to
// proceed.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	parts := []string{e.Message}
	if e.Hint != "" {
		parts = append(parts, "hint: "+e.Hint)
	}
	if e.NextStep != "" {
		parts = append(parts, "next: "+e.NextStep)
	}
	return strings.Join(parts, "\n")
}

// newToolset builds the toolset from the loaded config.
func newToolset(logger zerolog.Logger, repo *history.Repository) *tools.Toolset {
	return tools.New(tools.Options{
		TemplatesDir: cfg.Paths.Templates,
		OutputDir:    cfg.Paths.Output,
		Logger:       logger,
		History:      repo,
	})
}

// openHistory opens the history log. Failures are reported but not fatal;
// the caller gets a nil repository and the tools simply skip recording.
func openHistory(logger zerolog.Logger) (*history.Repository, func()) {
	db, err := history.Open(cfg.Paths.History)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.Paths.History).Msg("history log unavailable")
		return nil, func() {}
	}
	return history.NewRepository(db), func() { db.Close() }
}
