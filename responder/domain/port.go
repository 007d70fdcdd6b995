package domain

import "fmt"

// Port is the TCP port the responder listens on.
type Port uint16

// NewPort validates that value is a usable TCP port number.
func NewPort(value int) (Port, error) {
	if value < 1 || value > 65535 {
		return 0, fmt.Errorf("port must be between 1 and 65535, got %d", value)
	}
	return Port(value), nil
}

// Address returns the listen address binding all interfaces.
func (p Port) Address() string {
	return fmt.Sprintf(":%d", p)
}
