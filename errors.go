package ssd1331

import "errors"

var (
	// ErrInvalidRegion is returned when a draw window is empty, reversed or
	// extends past the panel.
	ErrInvalidRegion = errors.New("ssd1331: invalid draw region")
	// ErrHalted is returned by drawing and configuration operations after
	// Halt until Init is called again.
	ErrHalted = errors.New("ssd1331: halted")
)

// CommunicationError reports a failed transport write.
type CommunicationError struct {
	Err error
}

func (e *CommunicationError) Error() string {
	return "ssd1331: communication error: " + e.Err.Error()
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// PinError reports a failed GPIO operation on the DC or RST line.
type PinError struct {
	Err error
}

func (e *PinError) Error() string {
	return "ssd1331: pin error: " + e.Err.Error()
}

func (e *PinError) Unwrap() error {
	return e.Err
}
