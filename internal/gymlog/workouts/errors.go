package workouts

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDayNotFound = errors.New("workout day not found")

// ValidationError is returned for malformed input, e.g. an unparseable date.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type EntryRefError struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
	RefID int64  `json:"ref_id"`
}

// ReferenceError lists the entries pointing at catalog items the owner cannot use.
// Only returned when references are checked strictly; otherwise such entries are dropped.
type ReferenceError struct {
	Entries []EntryRefError
}

func (e *ReferenceError) Error() string {
	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		parts = append(parts, fmt.Sprintf("%s[%d]=%d", entry.Kind, entry.Index, entry.RefID))
	}
	return "unknown or inaccessible references: " + strings.Join(parts, ", ")
}

// StorageError wraps a persistence failure. Nothing of the failed save is visible afterwards.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
