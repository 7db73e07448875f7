package cli

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/logging"
	"github.com/docflow-ai/docflow/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the document tools over MCP on stdio",
	Long: `Serve exposes the template, document and file tools to MCP clients
over stdin/stdout. Logs go to stderr and the log directory; stdout carries
only protocol traffic.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger, closeLog, err := logging.Setup(cfg.Paths.Logs, verbose)
		if err != nil {
			return err
		}
		defer closeLog()

		repo, closeHistory := openHistory(logger)
		defer closeHistory()

		server := mcp.NewServer(rootCmd.Version, newToolset(logger, repo))
		logger.Info().Msg("serving MCP on stdio")
		return server.Run(cmd.Context(), &sdkmcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
