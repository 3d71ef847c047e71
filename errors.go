package camsensor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidWidth       = errors.New("register width must be 1 to 4 bytes")
	ErrShortRead          = errors.New("insufficient data")
	ErrNotPowered         = errors.New("sensor is not powered")
	ErrStreaming          = errors.New("sensor is streaming")
	ErrNotStreaming       = errors.New("sensor is not streaming")
	ErrBusy               = errors.New("operation not allowed while streaming")
	ErrIdentity           = errors.New("unexpected sensor id")
	ErrInvalidChannel     = errors.New("channel index out of range")
	ErrHDRMode            = errors.New("no mode for requested hdr setting")
	ErrUnsupportedControl = errors.New("control not supported by sensor")
	ErrUnknownSensor      = errors.New("unknown sensor")
	ErrInvalidInterval    = errors.New("invalid frame interval")
	ErrUnknownCommand     = errors.New("unknown command")
)

// WriteError records the register write that failed
type WriteError struct {
	Addr  uint16
	Width int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write reg 0x%04x (%d bytes): %v", e.Addr, e.Width, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// BatchError holds every failed write of a batch run with the Aggregate
// error policy
type BatchError struct {
	Errs []error
}

func (e *BatchError) add(err error) {
	e.Errs = append(e.Errs, err)
}

// errOrNil returns nil when nothing failed so a zero BatchError never leaks
// out as a non nil error
func (e *BatchError) errOrNil() error {

	if len(e.Errs) == 0 {
		return nil
	}

	return e
}

func (e *BatchError) Error() string {

	msgs := make([]string, len(e.Errs))

	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("%d register writes failed: %s", len(e.Errs),
		strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	return e.Errs
}

// IdentityError reports the chip ID read from the sensor
type IdentityError struct {
	Want uint32
	Got  uint32
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("unexpected sensor ID: 0x%X, want 0x%X", e.Got, e.Want)
}

func (e *IdentityError) Is(target error) bool {
	return target == ErrIdentity
}
