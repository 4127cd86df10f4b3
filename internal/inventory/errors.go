package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes every failure or status the package reports, so callers can
// react without reading error text.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindInvalidSheet
	KindLoad
	KindEmptyInventory
	KindEmptyQuery
	KindNoSearchableColumns
	KindSearch
)

// Info reports whether the kind is a status to show rather than a fault.
func (k Kind) Info() bool {
	return k == KindEmptyInventory || k == KindEmptyQuery
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindInvalidSheet:
		return "invalid_sheet"
	case KindLoad:
		return "load"
	case KindEmptyInventory:
		return "empty_inventory"
	case KindEmptyQuery:
		return "empty_query"
	case KindNoSearchableColumns:
		return "no_searchable_columns"
	case KindSearch:
		return "search"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	// ErrEmptyInventory: no table loaded, or it has no rows.
	ErrEmptyInventory = errors.New("inventory data is not loaded or is empty")
	// ErrEmptyQuery: the query has no terms.
	ErrEmptyQuery = errors.New("please enter a search query")
	// ErrNoSearchableColumns: none of the requested columns exist in the table.
	ErrNoSearchableColumns = errors.New("no valid columns selected or available for searching")
)

// NotFoundError indicates a missing or invalid source path.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("file not found or path is invalid: %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("file not found or path is invalid: %q", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// InvalidSheetError indicates a sheet index out of range or an unknown name.
type InvalidSheetError struct {
	Sheet     Sheet
	Available []string
}

func (e *InvalidSheetError) Error() string {
	var msg string
	if e.Sheet.byName {
		msg = fmt.Sprintf("sheet name %q not found", e.Sheet.name)
	} else {
		msg = fmt.Sprintf("sheet index %d is out of range", e.Sheet.index)
	}
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available sheets: %s)", strings.Join(e.Available, ", "))
	}
	return msg
}

// LoadError wraps any other failure while reading a source.
type LoadError struct {
	// File is the base name of the source.
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("an error occurred loading %q: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SearchError indicates a failure while matching rows. No rows accompany it.
type SearchError struct {
	Column string
	Row    int
	Err    error
}

func (e *SearchError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("error during search: column %q row %d: %v", e.Column, e.Row, e.Err)
	}
	return fmt.Sprintf("error during search: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }

// KindOf classifies err. It returns KindNone for nil and KindLoad for errors
// this package did not produce.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		nf *NotFoundError
		is *InvalidSheetError
		le *LoadError
		se *SearchError
	)
	switch {
	case errors.Is(err, ErrEmptyInventory):
		return KindEmptyInventory
	case errors.Is(err, ErrEmptyQuery):
		return KindEmptyQuery
	case errors.Is(err, ErrNoSearchableColumns):
		return KindNoSearchableColumns
	case errors.As(err, &nf):
		return KindNotFound
	case errors.As(err, &is):
		return KindInvalidSheet
	case errors.As(err, &se):
		return KindSearch
	case errors.As(err, &le):
		return KindLoad
	default:
		return KindLoad
	}
}

// IsInfo reports whether err is an informational status, not a fault.
func IsInfo(err error) bool {
	return KindOf(err).Info()
}
