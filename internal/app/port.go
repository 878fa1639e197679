package app

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"agentdiag/internal/output"
	"agentdiag/internal/portcheck"
	"agentdiag/internal/proc"
	"agentdiag/pkg/model"
)

func newPortCmd(opts *globalOptions) *cobra.Command {
	var (
		timeout time.Duration
		who     bool
	)

	cmd := &cobra.Command{
		Use:   "port [port]",
		Short: "Check whether the Chrome debug port accepts connections",
		Long: "Makes a single TCP connection attempt to 127.0.0.1:<port> and reports\n" +
			"OPEN or CLOSED. Defaults to 9222, the remote-debugging port the agent\n" +
			"launches Chrome with. Refused, timed out and unreachable all count as\n" +
			"CLOSED; the exit code is 0 either way.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := portcheck.DefaultPort
			if len(args) == 1 {
				p, err := strconv.Atoi(args[0])
				if err != nil || !portcheck.ValidPort(p) {
					return fmt.Errorf("invalid port %q", args[0])
				}
				port = p
			}

			log.Debugf("dialing %s:%d, timeout %s", portcheck.DefaultHost, port, timeout)
			status := portcheck.Check(portcheck.DefaultHost, port, timeout)
			log.Debugf("dial finished in %s (open=%v)", status.Latency, status.Open)

			var listeners []model.Listener
			if who && status.Open {
				ls, err := proc.FindListeners(port)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
				listeners = ls
			}

			if opts.jsonOut {
				return printJSON(cmd, struct {
					Port      model.PortStatus
					Listeners []model.Listener `json:",omitempty"`
				}{status, listeners})
			}

			out := cmd.OutOrStdout()
			output.RenderPort(out, status, opts.colorEnabled())
			output.RenderListeners(out, listeners, opts.colorEnabled())
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", portcheck.DefaultTimeout, "TCP connect timeout")
	cmd.Flags().BoolVar(&who, "who", false, "resolve the process listening on the port (Linux)")
	return cmd
}
