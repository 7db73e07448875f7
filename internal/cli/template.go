package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/docflow-ai/docflow/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Inspect and render .docx templates",
}

var templateVarsCmd = &cobra.Command{
	Use:   "vars <template>",
	Short: "List a template's placeholders in order of first occurrence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolset := newToolset(toolLogger(), nil)
		variables, err := toolset.TemplateVariables(args[0])
		if err != nil {
			return err
		}
		for _, name := range variables {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var (
	renderSet       []string
	renderOut       string
	renderStrict    bool
	renderOverwrite bool
)

var templateRenderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Fill a template's placeholders and write the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := parseSetFlags(renderSet)
		if err != nil {
			return err
		}
		toolset := newToolset(toolLogger(), nil)
		path := toolset.ResolveTemplate(args[0])
		if err := template.Render(path, vars, renderOut, template.RenderOptions{
			Strict:    renderStrict,
			Overwrite: renderOverwrite,
		}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderOut)
		return nil
	},
}

var templateValidateCmd = &cobra.Command{
	Use:   "validate <template>",
	Short: "Check that a template parses and report its placeholders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toolset := newToolset(toolLogger(), nil)
		report, err := toolset.ValidateTemplate(args[0])
		if err != nil {
			return err
		}
		rows := [][]string{
			{"valid", formatYesNo(report.Valid)},
			{"variables", strings.Join(report.Variables, ", ")},
		}
		return writeTable(cmd.OutOrStdout(), nil, rows)
	},
}

// parseSetFlags turns repeated --set name=value flags into a render context.
func parseSetFlags(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q, expected name=value", pair)
		}
		vars[name] = value
	}
	return vars, nil
}

// toolLogger is a console-only logger for one-shot tool commands, which do
// not need the per-day log files the chat session writes.
func toolLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func init() {
	templateRenderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "set a placeholder value as name=value (repeatable)")
	templateRenderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "output document path")
	templateRenderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail when any placeholder has no value")
	templateRenderCmd.Flags().BoolVar(&renderOverwrite, "overwrite", false, "allow replacing an existing output file")
	templateRenderCmd.MarkFlagRequired("output")

	templateCmd.AddCommand(templateVarsCmd, templateRenderCmd, templateValidateCmd)
	rootCmd.AddCommand(templateCmd)
}
