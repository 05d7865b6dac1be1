package shared

import "fmt"

var (
	// Authentication errors
	ErrUnauthorized = fmt.Errorf("could not authenticate")

	// Store errors
	ErrNotFound = fmt.Errorf("not found")

	// Library errors
	ErrInvalidMetadata = fmt.Errorf("invalid audiobook metadata")
)
