package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <srcDir> <outDir>",
		Short: "Compile every source file of a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), args[0], args[1], buildOptions(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <srcDir> <outDir>",
		Short: "Build a directory and rebuild changed files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args[0], args[1], buildOptions(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}
