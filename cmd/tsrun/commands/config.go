package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsrun/internal/app"
)

func (c *CLI) newShowConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-config [dir]",
		Short: "Print the project configuration that applies to a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.ShowConfig(cmd.Context(), dir, requestOptions(cmd))
		},
	}
	addRequestFlags(cmd)
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the output cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				CacheDir: cacheDir,
				All:      all,
			})
		},
	}
	cmd.Flags().String("cache-dir", "", "Output cache directory")
	cmd.Flags().BoolP("all", "a", false, "Remove the whole .tsrun directory")
	return cmd
}
