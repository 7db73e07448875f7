package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/history"
)

var (
	historyLast int
	historyType string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent agent operations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := history.Open(cfg.Paths.History)
		if err != nil {
			return err
		}
		defer db.Close()
		repo := history.NewRepository(db)

		if historyLast < 1 {
			return errors.New("--last must be at least 1")
		}
		query := history.Query{Limit: historyLast}
		if historyType != "" {
			eventType := history.EventType(historyType)
			query.Type = &eventType
		}
		events, err := repo.List(cmd.Context(), query)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(events))
		for _, event := range events {
			rows = append(rows, []string{
				event.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(event.Type),
				event.Path,
				event.Detail,
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"TIME", "TYPE", "PATH", "DETAIL"}, rows)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLast, "last", 20, "number of events to show")
	historyCmd.Flags().StringVar(&historyType, "type", "", "filter by event type (e.g. document.generated)")
	rootCmd.AddCommand(historyCmd)
}
