package logtail

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"agentdiag/pkg/model"
)

const (
	// DefaultFile is the log the notification agent appends to, resolved
	// relative to the current working directory.
	DefaultFile = "notification_agent_log.txt"
	// DefaultLines is how much of the tail is shown.
	DefaultLines = 200
	// StartupFile is the marker file the agent writes when it launches Chrome.
	StartupFile = "debug_start.txt"
)

// Read loads the whole file, counts its lines and keeps the last n. A missing
// file is returned as an error wrapping fs.ErrNotExist so callers can print
// the not-found message; any other I/O error propagates as-is. Malformed
// UTF-8 is replaced, never surfaced.
func Read(path string, n int) (model.LogTail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.LogTail{}, fmt.Errorf("read log: %w", err)
	}

	lines := splitLines(string(data))
	tail := model.LogTail{
		Path:       path,
		TotalLines: len(lines),
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	tail.Lines = lines
	return tail, nil
}

// splitLines breaks file content into lines the way the agent's own tooling
// counts them: a trailing newline terminates the last line instead of opening
// an empty one, and each line loses its terminator (\n or \r\n).
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ToValidUTF8(content, string(utf8.RuneError))

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ReadStartup returns the raw content of the startup marker file.
func ReadStartup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read startup file: %w", err)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}
