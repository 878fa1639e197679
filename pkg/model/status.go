package model

// Status is the combined health view: debug port plus agent log.
type Status struct {
	Port      PortStatus
	Listeners []Listener
	Log       *LogTail
	LogError  string // "not found" or read failure; empty when Log is set
}
