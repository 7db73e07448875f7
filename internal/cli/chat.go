package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/agent"
	"github.com/docflow-ai/docflow/internal/gigachat"
	"github.com/docflow-ai/docflow/internal/llm"
	"github.com/docflow-ai/docflow/internal/logging"
	"github.com/docflow-ai/docflow/internal/profile"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session with the agent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !IsInteractive() {
			return &PreflightError{
				Message: "chat needs an interactive terminal",
				Hint:    "stdin is not a TTY or --non-interactive is set",
				NextStep: "use the template/doc/fs subcommands for scripted runs, " +
					"or `docflow serve` for MCP",
			}
		}

		logger, closeLog, err := logging.Setup(cfg.Paths.Logs, verbose)
		if err != nil {
			return err
		}
		defer closeLog()

		prof := profile.Builtin()
		if cfg.Paths.Profile != "" {
			prof, err = profile.Load(cfg.Paths.Profile)
			if err != nil {
				return err
			}
		}

		if cfg.ValidateLLM() != nil {
			if creds, ok := promptSecret("Ключ GigaChat (Enter — пропустить): "); ok {
				cfg.LLM.Credentials = creds
			}
		}

		var client llm.Client
		if err := cfg.ValidateLLM(); err == nil {
			client, err = gigachat.NewClient(gigachat.Config{
				Credentials: cfg.LLM.Credentials,
				Scope:       cfg.LLM.Scope,
				Model:       cfg.LLM.Model,
				Temperature: cfg.LLM.Temperature,
				MaxTokens:   cfg.LLM.MaxTokens,
				Timeout:     cfg.LLM.Timeout,
				Insecure:    cfg.LLM.Insecure,
				BaseURL:     cfg.LLM.BaseURL,
				AuthURL:     cfg.LLM.AuthURL,
			})
			if err != nil {
				return err
			}
		} else {
			logger.Warn().Err(err).Msg("LLM disabled, tool commands only")
		}

		repo, closeHistory := openHistory(logger)
		defer closeHistory()

		session, err := agent.New(agent.Options{
			Profile:    prof,
			Client:     client,
			Tools:      newToolset(logger, repo),
			History:    repo,
			Logger:     logger,
			Input:      os.Stdin,
			Output:     os.Stdout,
			LLMTimeout: cfg.LLM.Timeout,
		})
		if err != nil {
			return err
		}

		PrintWelcome(os.Stdout, prof)
		return session.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
