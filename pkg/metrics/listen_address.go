package metrics

import (
	"fmt"
	"net"
	"strconv"
)

// ListenAddress is the address the metrics listener binds to.
// The zero value disables the listener.
//
// Valid address formats:
//   - "localhost:9100"
//   - "0.0.0.0:9100"
//   - ":9100" (binds to all interfaces)
//   - "[::1]:9100" (IPv6)
type ListenAddress string

// Enabled reports whether a listener should be started.
func (a ListenAddress) Enabled() bool {
	return a != ""
}

// NewListenAddress validates value as host:port. An empty value is accepted
// and disables metrics exposition.
func NewListenAddress(value string) (ListenAddress, error) {
	if value == "" {
		return "", nil
	}

	_, port, err := net.SplitHostPort(value)
	if err != nil {
		return "", fmt.Errorf("invalid metrics address format: %w", err)
	}

	n, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("metrics port must be a number: %s", port)
	}
	if n < 1 || n > 65535 {
		return "", fmt.Errorf("metrics port must be between 1 and 65535: %d", n)
	}

	return ListenAddress(value), nil
}
