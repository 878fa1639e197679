package logtail

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notification_agent_log.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"), DefaultLines)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFiveLines(t *testing.T) {
	path := writeLog(t, "one\ntwo\nthree\nfour\nfive\n")

	tail, err := Read(path, DefaultLines)
	require.NoError(t, err)

	assert.Equal(t, 5, tail.TotalLines)
	assert.Equal(t, []string{"one", "two", "three", "four", "five"}, tail.Lines)
}

func TestReadKeepsLastN(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 250; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := writeLog(t, b.String())

	tail, err := Read(path, 200)
	require.NoError(t, err)

	assert.Equal(t, 250, tail.TotalLines)
	require.Len(t, tail.Lines, 200)
	assert.Equal(t, "line 51", tail.Lines[0])
	assert.Equal(t, "line 250", tail.Lines[199])
}

func TestReadEmptyFile(t *testing.T) {
	path := writeLog(t, "")

	tail, err := Read(path, DefaultLines)
	require.NoError(t, err)

	assert.Equal(t, 0, tail.TotalLines)
	assert.Empty(t, tail.Lines)
}

func TestReadNoTrailingNewline(t *testing.T) {
	path := writeLog(t, "a\nb\nc")

	tail, err := Read(path, DefaultLines)
	require.NoError(t, err)

	assert.Equal(t, 3, tail.TotalLines)
	assert.Equal(t, []string{"a", "b", "c"}, tail.Lines)
}

func TestReadCRLF(t *testing.T) {
	path := writeLog(t, "first\r\nsecond\r\n")

	tail, err := Read(path, DefaultLines)
	require.NoError(t, err)

	assert.Equal(t, 2, tail.TotalLines)
	assert.Equal(t, []string{"first", "second"}, tail.Lines)
}

func TestReadReplacesInvalidUTF8(t *testing.T) {
	path := writeLog(t, "ok\n\xff\xfe broken\n")

	tail, err := Read(path, DefaultLines)
	require.NoError(t, err)

	assert.Equal(t, 2, tail.TotalLines)
	assert.Equal(t, "ok", tail.Lines[0])
	assert.Contains(t, tail.Lines[1], "�")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single no newline", "x", []string{"x"}},
		{"single with newline", "x\n", []string{"x"}},
		{"blank line in middle", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.content))
		})
	}
}

func TestReadStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), StartupFile)
	require.NoError(t, os.WriteFile(path, []byte("chrome launched at 10:32\n"), 0o644))

	content, err := ReadStartup(path)
	require.NoError(t, err)
	assert.Equal(t, "chrome launched at 10:32\n", content)
}

func TestReadStartupMissing(t *testing.T) {
	_, err := ReadStartup(filepath.Join(t.TempDir(), StartupFile))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
