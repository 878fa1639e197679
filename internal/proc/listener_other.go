//go:build !linux

package proc

import (
	"errors"

	"agentdiag/pkg/model"
)

// ErrUnsupported is returned where listener resolution has no implementation.
var ErrUnsupported = errors.New("listener lookup is only supported on Linux")

func FindListeners(port int) ([]model.Listener, error) {
	return nil, ErrUnsupported
}
