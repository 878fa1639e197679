package model

import "time"

// PortStatus is the outcome of a single TCP dial against a local port.
type PortStatus struct {
	Host    string
	Port    int
	Open    bool
	Latency time.Duration
	Error   string // dial error text when closed; empty when open
}

// Listener is a process holding a listening socket on the probed port.
type Listener struct {
	PID      int
	Command  string
	Address  string // 0.0.0.0, 127.0.0.1, ::
	Protocol string // TCP, TCP6
}
