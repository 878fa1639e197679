package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"agentdiag/internal/logtail"
	"agentdiag/internal/output"
)

func newLogCmd(opts *globalOptions) *cobra.Command {
	var (
		file    string
		lines   int
		startup bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the tail of the agent log",
		Long: "Reads the agent log from the current working directory and prints the\n" +
			"total line count followed by the last lines. A missing log is reported\n" +
			"with a not-found message and a normal exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lines < 0 {
				return fmt.Errorf("--lines must not be negative")
			}
			out := cmd.OutOrStdout()

			tail, err := logtail.Read(file, lines)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				output.RenderNotFound(out, file)
			case err != nil:
				return err
			case opts.jsonOut:
				if err := printJSON(cmd, tail); err != nil {
					return err
				}
			default:
				output.RenderTail(out, tail, lines)
			}

			if !startup {
				return nil
			}
			content, err := logtail.ReadStartup(logtail.StartupFile)
			switch {
			case errors.Is(err, fs.ErrNotExist):
				output.RenderStartupNotFound(out, logtail.StartupFile)
			case err != nil:
				return err
			default:
				output.RenderStartup(out, logtail.StartupFile, content)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", logtail.DefaultFile, "log file to read")
	cmd.Flags().IntVar(&lines, "lines", logtail.DefaultLines, "how many trailing lines to print")
	cmd.Flags().BoolVar(&startup, "startup", false, "also dump the "+logtail.StartupFile+" marker file")
	return cmd
}
