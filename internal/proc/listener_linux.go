//go:build linux

package proc

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"agentdiag/pkg/model"
)

const listenState = "0A"

type socket struct {
	inode    string
	address  string
	port     int
	protocol string
}

// FindListeners resolves which processes hold a listening socket on port.
// It matches socket inodes from /proc/net/tcp{,6} against every process's
// fd table, the same lookup the agent does with netstat before reusing or
// killing an old Chrome.
func FindListeners(port int) ([]model.Listener, error) {
	sockets, err := listeningSockets(port)
	if err != nil {
		return nil, err
	}
	if len(sockets) == 0 {
		return nil, nil
	}

	procs, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("scan /proc: %w", err)
	}

	var listeners []model.Listener
	for _, p := range procs {
		if !p.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(p.Name())
		if err != nil {
			continue
		}

		fdPath := fmt.Sprintf("/proc/%d/fd", pid)
		fds, err := os.ReadDir(fdPath)
		if err != nil {
			// Not our process or it vanished; skip.
			continue
		}

		for _, fd := range fds {
			link, err := os.Readlink(fdPath + "/" + fd.Name())
			if err != nil || !strings.HasPrefix(link, "socket:[") {
				continue
			}
			inode := strings.TrimSuffix(strings.TrimPrefix(link, "socket:["), "]")
			s, ok := sockets[inode]
			if !ok {
				continue
			}
			listeners = append(listeners, model.Listener{
				PID:      pid,
				Command:  commandName(pid),
				Address:  s.address,
				Protocol: s.protocol,
			})
			break
		}
	}
	return listeners, nil
}

func listeningSockets(port int) (map[string]socket, error) {
	sockets := make(map[string]socket)

	parse := func(path, proto string, ipv6 bool) {
		f, err := os.Open(path)
		if err != nil {
			return
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		scanner.Scan() // header

		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) < 10 {
				continue
			}
			if fields[3] != listenState {
				continue
			}
			addr, p := parseHexAddr(fields[1], ipv6)
			if p != port {
				continue
			}
			sockets[fields[9]] = socket{
				inode:    fields[9],
				address:  addr,
				port:     p,
				protocol: proto,
			}
		}
	}

	parse("/proc/net/tcp", "TCP", false)
	parse("/proc/net/tcp6", "TCP6", true)

	return sockets, nil
}

// parseHexAddr decodes the ADDR:PORT hex pairs of /proc/net/tcp. IPv4 bytes
// are little-endian; IPv6 is four little-endian 32-bit groups.
func parseHexAddr(raw string, ipv6 bool) (string, int) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return "", 0
	}
	port, _ := strconv.ParseInt(parts[1], 16, 32)

	b, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", int(port)
	}

	if ipv6 {
		if len(b) != 16 {
			return "::", int(port)
		}
		ip := make(net.IP, 16)
		for i := 0; i < 4; i++ {
			ip[i*4+0] = b[i*4+3]
			ip[i*4+1] = b[i*4+2]
			ip[i*4+2] = b[i*4+1]
			ip[i*4+3] = b[i*4+0]
		}
		return ip.String(), int(port)
	}

	if len(b) < 4 {
		return "", int(port)
	}
	return fmt.Sprintf("%d.%d.%d.%d", b[3], b[2], b[1], b[0]), int(port)
}

func commandName(pid int) string {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(comm))
}
