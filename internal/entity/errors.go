package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("entity not found")

// ValidationError is the aggregated failure of a construction or a field
// update. For constructions Messages holds every violated rule; for setters
// only the messages of the field being changed.
type ValidationError struct {
	Kind     string
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s arguments: %s", e.Kind, strings.Join(e.Messages, ", "))
}

// NotFoundError is available to callers that need a hard failure for a
// missing entity. Repository lookups themselves report absence with a bool.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// check wraps msgs into a ValidationError, or returns nil when empty.
func check(kind string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Messages: msgs}
}

// Messages extracts the violation list from err, or nil if err is not a
// ValidationError.
func Messages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
