package gomap

import (
	"errors"
	"fmt"
)

var ErrDestination = errors.New("destination must be a non-nil pointer to a struct")

// UnmarshalError represents a value which cannot fill its field.
type UnmarshalError struct {
	Key     string
	Message string
	Err     error
}

func (e *UnmarshalError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
