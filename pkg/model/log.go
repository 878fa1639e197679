package model

// LogTail is the result of reading the tail of the agent log.
type LogTail struct {
	Path       string
	TotalLines int
	Lines      []string // last requested lines, original order, terminators stripped
}
