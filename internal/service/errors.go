package service

import "fmt"

// ValidationError indicates the input failed shape or constraint checks
// before any store call; no side effect has occurred when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
