// Package app wires the agentdiag commands. The tool is a set of small local
// checks for a browser-automation agent: is Chrome's remote-debugging port
// accepting connections, and what does the tail of the agent log say.
package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"agentdiag/internal/output"
)

var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

// SetVersionBuildCommitString feeds the ldflags values from main.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	buildDate = d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit
		if buildDate != "" {
			s += ", " + buildDate
		}
		s += ")"
	}
	return s
}

type globalOptions struct {
	jsonOut bool
	verbose bool
	noColor bool
}

func (o *globalOptions) colorEnabled() bool {
	return !o.noColor && isatty.IsTerminal(os.Stdout.Fd())
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "agentdiag",
		Short: "Local diagnostics for the notification agent",
		Long: "agentdiag checks the environment the notification agent runs in:\n" +
			"whether Chrome's remote-debugging port accepts connections, and what\n" +
			"the tail of the agent log looks like.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(os.Stderr)
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print machine-readable JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newPortCmd(opts),
		newLogCmd(opts),
		newStatusCmd(opts),
		newWatchCmd(),
	)
	return cmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	s, err := output.ToJSON(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
