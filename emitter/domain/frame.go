package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// BadFrameLine is written instead of a reading when a frame is corrupted.
const BadFrameLine = "BAD_FRAME"

var (
	// ErrCorruptedFrame is returned by ParseFrame for the corruption sentinel.
	ErrCorruptedFrame = errors.New("corrupted frame")
	// ErrMalformedFrame is returned by ParseFrame for any other unreadable line.
	ErrMalformedFrame = errors.New("malformed frame")
)

// Frame is one line written to the serial device.
type Frame struct {
	Sequence  int64
	Timestamp time.Time
	Value     float64
	Corrupted bool
}

// Line renders the frame with its trailing newline.
func (f Frame) Line() string {
	if f.Corrupted {
		return BadFrameLine + "\n"
	}
	return fmt.Sprintf("%d,%s,%.5f\n", f.Sequence, FormatTimestamp(f.Timestamp), f.Value)
}

// FormatTimestamp renders t as unix seconds with six decimals.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

// ParseFrame reads a line the way the receiving side does: three comma separated
// fields holding an integer sequence, a float unix timestamp and a float value.
func ParseFrame(line string) (Frame, error) {
	line = strings.TrimSpace(line)
	if line == BadFrameLine {
		return Frame{Corrupted: true}, ErrCorruptedFrame
	}

	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Frame{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrMalformedFrame, len(fields))
	}

	sequence, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: sequence: %s", ErrMalformedFrame, err.Error())
	}

	timestamp, err := parseTimestamp(strings.TrimSpace(fields[1]))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: timestamp: %s", ErrMalformedFrame, err.Error())
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: value: %s", ErrMalformedFrame, err.Error())
	}

	return Frame{Sequence: sequence, Timestamp: timestamp, Value: value}, nil
}

// parseTimestamp reads plain decimals digit by digit so microseconds survive.
// Other float forms go through ParseFloat.
func parseTimestamp(field string) (time.Time, error) {
	seconds, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return time.Time{}, err
	}

	whole, fraction, found := strings.Cut(field, ".")
	if found && len(fraction) <= 9 {
		sec, errSec := strconv.ParseUint(whole, 10, 63)
		nsec, errNsec := strconv.ParseUint(fraction+strings.Repeat("0", 9-len(fraction)), 10, 63)
		if errSec == nil && errNsec == nil {
			return time.Unix(int64(sec), int64(nsec)), nil
		}
	}

	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, fmt.Errorf("not a finite number: %s", field)
	}
	intPart, fracPart := math.Modf(seconds)
	return time.Unix(int64(intPart), int64(fracPart*1e9)), nil
}
