package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsrun/internal/app"
)

func (c *CLI) newTranspileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpile <file>...",
		Short: "Compile files and print runnable JavaScript",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			outFile, _ := cmd.Flags().GetString("out-file")

			return c.app.Transpile(cmd.Context(), args, app.TranspileOptions{
				RequestOptions: requestOptions(cmd),
				OutFile:        outFile,
			})
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().StringP("out-file", "o", "", "Write the output to a file instead of stdout")
	return cmd
}
