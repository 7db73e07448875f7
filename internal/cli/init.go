package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/docx"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the working directories and a sample memo template",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, dir := range []string{cfg.Paths.Templates, cfg.Paths.Output, cfg.Paths.Logs} {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
			fmt.Fprintln(out, "created", dir)
		}

		memo := filepath.Join(cfg.Paths.Templates, "докладная записка.docx")
		if _, err := os.Stat(memo); err == nil {
			fmt.Fprintln(out, "exists", memo)
			return nil
		}
		if err := docx.Write(memo, []string{
			"ДОКЛАДНАЯ ЗАПИСКА",
			"Дата: {{ date }}",
			"{{ text }}",
			"Исполнитель: {{ executor }}",
		}); err != nil {
			return err
		}
		fmt.Fprintln(out, "created", memo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
