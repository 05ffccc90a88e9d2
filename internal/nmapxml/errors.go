package nmapxml

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the report file cannot be opened
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedDocument is returned when the input is not well-formed XML
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingAddress is returned for a host without an <address addr="...">
	ErrMissingAddress = errors.New("host has no address")

	// ErrMissingPortsContainer is returned for a host without a <ports> element
	ErrMissingPortsContainer = errors.New("host has no ports container")

	// ErrIncompletePort is returned for a port lacking protocol, portid or state
	ErrIncompletePort = errors.New("port is missing protocol, portid or state")
)

// HostError locates an extraction failure within the report.
// Index is the 1-based position of the host among the root's host elements.
type HostError struct {
	Index   int
	Address string
	Err     error
}

func (e *HostError) Error() string {
	if e.Address != "" {
		return fmt.Sprintf("host #%d (%s): %v", e.Index, e.Address, e.Err)
	}
	return fmt.Sprintf("host #%d: %v", e.Index, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
}
