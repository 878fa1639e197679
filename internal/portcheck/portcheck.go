package portcheck

import (
	"net"
	"strconv"
	"time"

	"agentdiag/pkg/model"
)

const (
	// DefaultHost is the loopback interface the agent's Chrome binds to.
	DefaultHost = "127.0.0.1"
	// DefaultPort is Chrome's remote-debugging port as launched by the agent.
	DefaultPort = 9222
	// DefaultTimeout bounds the TCP handshake.
	DefaultTimeout = 2 * time.Second
)

// Check makes exactly one connection attempt against host:port. Any dial
// failure (refused, timeout, unreachable) is reported as a closed port, not
// an error. The connection is closed before returning.
func Check(host string, port int, timeout time.Duration) model.PortStatus {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	start := time.Now()

	conn, err := net.DialTimeout("tcp", addr, timeout)
	status := model.PortStatus{
		Host:    host,
		Port:    port,
		Latency: time.Since(start),
	}
	if err != nil {
		status.Error = err.Error()
		return status
	}
	conn.Close()
	status.Open = true
	return status
}

// ValidPort reports whether p is a usable TCP port number.
func ValidPort(p int) bool {
	return p >= 0 && p <= 65535
}
