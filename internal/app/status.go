package app

import (
	"errors"
	"io/fs"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"agentdiag/internal/logtail"
	"agentdiag/internal/output"
	"agentdiag/internal/portcheck"
	"agentdiag/internal/proc"
	"agentdiag/pkg/model"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var (
		port    int
		timeout time.Duration
		file    string
		lines   int
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Combined debug-port and agent-log health view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status model.Status

			// The probe and the log read touch disjoint fields, so they can
			// run side by side.
			var g errgroup.Group
			g.Go(func() error {
				status.Port = portcheck.Check(portcheck.DefaultHost, port, timeout)
				if !status.Port.Open {
					return nil
				}
				ls, err := proc.FindListeners(port)
				if err != nil {
					log.Debugf("listener lookup: %v", err)
					return nil
				}
				status.Listeners = ls
				return nil
			})
			g.Go(func() error {
				tail, err := logtail.Read(file, lines)
				switch {
				case errors.Is(err, fs.ErrNotExist):
					status.LogError = file + " not found."
				case err != nil:
					return err
				default:
					status.Log = &tail
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			if opts.jsonOut {
				return printJSON(cmd, status)
			}
			output.RenderStatus(cmd.OutOrStdout(), status, opts.colorEnabled())
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", portcheck.DefaultPort, "debug port to probe")
	cmd.Flags().DurationVar(&timeout, "timeout", portcheck.DefaultTimeout, "TCP connect timeout")
	cmd.Flags().StringVar(&file, "file", logtail.DefaultFile, "log file to summarize")
	cmd.Flags().IntVar(&lines, "lines", logtail.DefaultLines, "tail size to keep for the summary")
	return cmd
}
