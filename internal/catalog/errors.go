package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownEntry is returned by Lookup when no entry has the given ID.
	ErrUnknownEntry = errors.New("unknown chart")
	// ErrDuplicateID indicates two entries share an identifier.
	ErrDuplicateID = errors.New("duplicate chart id")
	// ErrInvalidLibrary indicates a value outside the library enumeration.
	ErrInvalidLibrary = errors.New("invalid library")
	// ErrInvalidCategory indicates a value outside the category enumeration.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrMissingField indicates an entry lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// TagError reports a selector or tag outside its closed enumeration.
type TagError struct {
	Kind  string
	Value string
	Err   error
}

func (e *TagError) Error() string {
	var valid []string
	switch e.Kind {
	case "library":
		for _, l := range libraryOrder {
			valid = append(valid, string(l))
		}
	case "category":
		for _, c := range categoryOrder {
			valid = append(valid, string(c))
		}
	}
	return fmt.Sprintf("%v %q (valid: all, %s)", e.Err, e.Value, strings.Join(valid, ", "))
}

func (e *TagError) Unwrap() error { return e.Err }

// LookupError is returned when an ID is not in the catalog. Suggestions holds
// IDs that contain the requested ID as a case-insensitive substring.
type LookupError struct {
	ID          string
	Suggestions []string
}

func (e *LookupError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v %q", ErrUnknownEntry, e.ID)
	}
	return fmt.Sprintf("%v %q (did you mean: %s?)", ErrUnknownEntry, e.ID, strings.Join(e.Suggestions, ", "))
}

func (e *LookupError) Unwrap() error { return ErrUnknownEntry }
