package infrastructure

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	emitterDomain "github.com/samoilenko/ebers_doubles/emitter/domain"
)

// Line settings of the receiving side.
const (
	BaudRate        = 115200
	SerialReadLimit = time.Second
)

// SerialMode is 115200 baud, 8 data bits, no parity, one stop bit.
func SerialMode() *serial.Mode {
	return &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// OpenSerialPort opens device with SerialMode and a one second read timeout.
// The caller owns the returned port and must close it.
func OpenSerialPort(device emitterDomain.DeviceName) (serial.Port, error) {
	port, err := serial.Open(string(device), SerialMode())
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", device, err)
	}

	if err := port.SetReadTimeout(SerialReadLimit); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", device, err)
	}

	return port, nil
}

// AvailablePorts lists the serial devices present on the host.
func AvailablePorts() []string {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil
	}
	return ports
}
