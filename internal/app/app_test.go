package app

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestPortCommandOpen(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	out := execute(t, "port", strconv.Itoa(port))
	assert.Equal(t, fmt.Sprintf("Port %d is OPEN\n", port), out)
}

func TestPortCommandClosed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	out := execute(t, "port", strconv.Itoa(port))
	assert.Equal(t, fmt.Sprintf("Port %d is CLOSED\n", port), out)
}

func TestPortCommandInvalidArg(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"port", "70000"})
	assert.Error(t, cmd.Execute())
}

func TestLogCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	out := execute(t, "log", "--file", path)
	assert.Equal(t, path+" not found.\n", out)
}

func TestLogCommandTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\nfour\nfive\n"), 0o644))

	out := execute(t, "log", "--file", path)
	want := "Total lines: 5\n" +
		fmt.Sprintf("--- Last 200 lines of %s ---\n", path) +
		"one\ntwo\nthree\nfour\nfive\n"
	assert.Equal(t, want, out)
}

func TestLogCommandKeepsLastN(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 250; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	out := execute(t, "log", "--file", path, "--lines", "200")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 202) // count line + header + 200 tail lines
	assert.Equal(t, "Total lines: 250", lines[0])
	assert.Equal(t, "line 51", lines[2])
	assert.Equal(t, "line 250", lines[201])
}

func TestLogCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	out := execute(t, "log", "--file", path, "--json")
	assert.Contains(t, out, `"TotalLines": 2`)
	assert.Contains(t, out, `"a"`)
}

func TestStatusCommand(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("boot\nready\n"), 0o644))

	out := execute(t, "status", "--port", strconv.Itoa(port), "--file", path)
	assert.Contains(t, out, fmt.Sprintf("debug port : %d open", port))
	assert.Contains(t, out, "2 lines")
	assert.Contains(t, out, "last entry : ready")
}

func TestStatusCommandMissingLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	out := execute(t, "status", "--port", "1", "--file", path, "--timeout", "100ms")
	assert.Contains(t, out, "closed")
	assert.Contains(t, out, path+" not found.")
}
