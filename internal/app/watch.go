package app

import (
	"time"

	"github.com/spf13/cobra"

	"agentdiag/internal/logtail"
	"agentdiag/internal/portcheck"
	"agentdiag/internal/tui"
)

func newWatchCmd() *cobra.Command {
	var (
		port     int
		file     string
		lines    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Full-screen viewer for the agent log and debug port",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Start(tui.Options{
				Port:     port,
				File:     file,
				Lines:    lines,
				Interval: interval,
				Version:  versionString(),
			})
		},
	}

	cmd.Flags().IntVar(&port, "port", portcheck.DefaultPort, "debug port to probe")
	cmd.Flags().StringVar(&file, "file", logtail.DefaultFile, "log file to watch")
	cmd.Flags().IntVar(&lines, "lines", logtail.DefaultLines, "tail size to keep on screen")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "refresh interval")
	return cmd
}
