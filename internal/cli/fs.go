package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fsCmd = &cobra.Command{
	Use:   "fs",
	Short: "Manage files and folders in the working area",
}

var fsLsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List directory entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		toolset := newToolset(toolLogger(), nil)
		entries, err := toolset.ListFiles(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), entry)
		}
		return nil
	},
}

var fsCpCmd = &cobra.Command{
	Use:   "cp <src> <dst>",
	Short: "Copy a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		dst, err := toolset.CopyFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dst)
		return nil
	},
}

var fsMvCmd = &cobra.Command{
	Use:   "mv <src> <dst>",
	Short: "Move a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		dst, err := toolset.MoveFile(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dst)
		return nil
	},
}

var fsRmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		return toolset.DeleteFile(cmd.Context(), args[0])
	},
}

var fsMkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		return toolset.CreateFolder(cmd.Context(), args[0])
	},
}

var fsRmdirCmd = &cobra.Command{
	Use:   "rmdir <path>",
	Short: "Delete an empty folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeHistory := openHistory(toolLogger())
		defer closeHistory()
		toolset := newToolset(toolLogger(), repo)
		return toolset.DeleteFolder(cmd.Context(), args[0])
	},
}

func init() {
	fsCmd.AddCommand(fsLsCmd, fsCpCmd, fsMvCmd, fsRmCmd, fsMkdirCmd, fsRmdirCmd)
	rootCmd.AddCommand(fsCmd)
}
