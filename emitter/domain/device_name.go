package domain

import "errors"

// DeviceName - the serial device to write frames to (COM3, /dev/ttyUSB0, ...).
type DeviceName string

// NewDeviceName validates the given string and returns it as a DeviceName.
// It returns an error if name equal an empty string.
func NewDeviceName(name string) (DeviceName, error) {
	if name == "" {
		return "", errors.New("device name cannot be empty")
	}

	return DeviceName(name), nil
}
