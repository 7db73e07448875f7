package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Create, read and extend .docx documents",
}

var docNewText string

var docNewCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new .docx document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		if err := toolset.CreateDocument(cmd.Context(), args[0], docNewText); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), args[0])
		return nil
	},
}

var docReadCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Print a .docx document's text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolset := newToolset(toolLogger(), nil)
		text, err := toolset.ReadDocument(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var docAppendCmd = &cobra.Command{
	Use:   "append <path> <text>...",
	Short: "Append a paragraph to a .docx document",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		text := strings.Join(args[1:], " ")
		return toolset.AppendDocument(cmd.Context(), args[0], text)
	},
}

func init() {
	docNewCmd.Flags().StringVar(&docNewText, "text", "", "initial paragraph text")

	docCmd.AddCommand(docNewCmd, docReadCmd, docAppendCmd)
	rootCmd.AddCommand(docCmd)
}
