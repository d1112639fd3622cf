package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the fortune command. Cobra flag parsing is off:
// arguments are positional and handed to the driver unchanged, and the
// driver's exit code is stored in code.
func NewRootCommand(d *Driver, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fortune [-size <short|medium|long> [-color <name>]] | -write | -help",
		Short: "Print a random quote from the fortunes file",
		Long:  strings.TrimSpace(Usage),

		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,

		RunE: func(cmd *cobra.Command, args []string) error {
			*code = d.Run(cmd.Context(), args, Streams{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			})

			return nil
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the root command over args and streams and returns the
// process exit code.
func Execute(ctx context.Context, d *Driver, args []string, streams Streams) int {
	code := ExitOK

	cmd := NewRootCommand(d, &code)

	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return ExitFailure
	}

	return code
}
