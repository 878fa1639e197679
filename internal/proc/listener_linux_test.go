//go:build linux

package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexAddrIPv4(t *testing.T) {
	// 0100007F is 127.0.0.1 little-endian, 2406 hex is 9222.
	addr, port := parseHexAddr("0100007F:2406", false)
	assert.Equal(t, "127.0.0.1", addr)
	assert.Equal(t, 9222, port)

	addr, port = parseHexAddr("00000000:0050", false)
	assert.Equal(t, "0.0.0.0", addr)
	assert.Equal(t, 80, port)
}

func TestParseHexAddrIPv6(t *testing.T) {
	addr, port := parseHexAddr("00000000000000000000000001000000:2406", true)
	assert.Equal(t, "::1", addr)
	assert.Equal(t, 9222, port)
}

func TestParseHexAddrMalformed(t *testing.T) {
	addr, port := parseHexAddr("garbage", false)
	assert.Empty(t, addr)
	assert.Zero(t, port)

	addr, port = parseHexAddr("ZZ:0050", false)
	assert.Empty(t, addr)
	assert.Equal(t, 80, port)
}
