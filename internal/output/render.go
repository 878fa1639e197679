package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"agentdiag/pkg/model"
)

var (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorBold  = "\033[2m"
)

// RenderPort prints the one-line open/closed verdict.
func RenderPort(w io.Writer, status model.PortStatus, colorEnabled bool) {
	verdict := "CLOSED"
	color := colorRed
	if status.Open {
		verdict = "OPEN"
		color = colorGreen
	}
	if colorEnabled {
		fmt.Fprintf(w, "Port %d is %s%s%s\n", status.Port, color, verdict, colorReset)
	} else {
		fmt.Fprintf(w, "Port %d is %s\n", status.Port, verdict)
	}
}

// RenderListeners prints one line per process found listening on the port.
func RenderListeners(w io.Writer, listeners []model.Listener, colorEnabled bool) {
	for _, l := range listeners {
		if colorEnabled {
			fmt.Fprintf(w, "%s listening on %s (%spid %d%s, %s)\n",
				l.Command, l.Address, colorBold, l.PID, colorReset, l.Protocol)
		} else {
			fmt.Fprintf(w, "%s listening on %s (pid %d, %s)\n",
				l.Command, l.Address, l.PID, l.Protocol)
		}
	}
}

// RenderNotFound prints the fixed not-found message for a missing file.
func RenderNotFound(w io.Writer, path string) {
	fmt.Fprintf(w, "%s not found.\n", path)
}

// RenderTail prints the line count, the tail header, and the kept lines.
// requested is the line budget the user asked for, shown in the header even
// when the file holds fewer lines.
func RenderTail(w io.Writer, tail model.LogTail, requested int) {
	fmt.Fprintf(w, "Total lines: %d\n", tail.TotalLines)
	fmt.Fprintf(w, "--- Last %d lines of %s ---\n", requested, tail.Path)
	for _, line := range tail.Lines {
		fmt.Fprintln(w, line)
	}
}

// RenderStartup prints the startup marker file, preceded by a blank line the
// way the agent's own tooling separates the two blocks.
func RenderStartup(w io.Writer, path, content string) {
	fmt.Fprintf(w, "\n--- %s content ---\n", path)
	fmt.Fprintln(w, strings.TrimSuffix(content, "\n"))
}

// RenderStartupNotFound prints the missing-marker message, also after a
// blank line.
func RenderStartupNotFound(w io.Writer, path string) {
	fmt.Fprintf(w, "\n%s not found.\n", path)
}

// RenderStatus prints the combined port/log health view.
func RenderStatus(w io.Writer, status model.Status, colorEnabled bool) {
	verdict := "closed"
	color := colorRed
	if status.Port.Open {
		verdict = "open"
		color = colorGreen
	}
	latency := status.Port.Latency.Round(time.Microsecond)
	if colorEnabled {
		fmt.Fprintf(w, "debug port : %d %s%s%s (%s)\n",
			status.Port.Port, color, verdict, colorReset, latency)
	} else {
		fmt.Fprintf(w, "debug port : %d %s (%s)\n",
			status.Port.Port, verdict, latency)
	}

	if len(status.Listeners) == 0 {
		fmt.Fprintln(w, "listener   : none")
	}
	for _, l := range status.Listeners {
		fmt.Fprintf(w, "listener   : %s (pid %d, %s %s)\n", l.Command, l.PID, l.Protocol, l.Address)
	}

	switch {
	case status.Log != nil:
		last := ""
		if n := len(status.Log.Lines); n > 0 {
			last = status.Log.Lines[n-1]
		}
		fmt.Fprintf(w, "log        : %s, %d lines\n", status.Log.Path, status.Log.TotalLines)
		if last != "" {
			fmt.Fprintf(w, "last entry : %s\n", last)
		}
	default:
		fmt.Fprintf(w, "log        : %s\n", status.LogError)
	}
}
