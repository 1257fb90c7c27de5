package gamelog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyRow is returned for a row without any cells.
	ErrEmptyRow = errors.New("row has no cells")

	// ErrLengthMismatch marks a row whose action and token lists differ in
	// length. The row is still parsed, truncated to the shorter list.
	ErrLengthMismatch = errors.New("action and token lists differ in length")
)

// InvalidTokenError is returned for an empty or otherwise unusable token.
type InvalidTokenError struct {
	Token  string
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q: %s", e.Token, e.Reason)
}

// UnrecognizedResourceError is returned when no resource code is a suffix
// of the token.
type UnrecognizedResourceError struct {
	Token string
}

func (e *UnrecognizedResourceError) Error() string {
	return fmt.Sprintf("unrecognized resource in token %q", e.Token)
}

// MissingQuantityError is returned when a token has no digits.
type MissingQuantityError struct {
	Token string
}

func (e *MissingQuantityError) Error() string {
	return fmt.Sprintf("no quantity found in token %q", e.Token)
}

// AttributionAmbiguityError is reported when more than one faction name
// occurs in a row's text. Chosen is the faction that was attributed.
type AttributionAmbiguityError struct {
	Text    string
	Matches []string
	Chosen  string
}

func (e *AttributionAmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous faction in %q: matched %s, chose %s",
		e.Text, strings.Join(e.Matches, ", "), e.Chosen)
}

// MalformedRowError is returned for rows that are neither narrative
// (one cell) nor event rows (three cells).
type MalformedRowError struct {
	Cells int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row: expected 1 or 3 cells, got %d", e.Cells)
}

// Issue is a recoverable problem found while assembling a log. Row is the
// chronological index of the offending row; Token is empty for row-level
// issues.
type Issue struct {
	Row   int
	Token string
	Err   error
}

func (i Issue) String() string {
	if i.Token != "" {
		return fmt.Sprintf("row %d, token %q: %v", i.Row, i.Token, i.Err)
	}
	return fmt.Sprintf("row %d: %v", i.Row, i.Err)
}

// Skipped reports whether the issue caused the whole row to be dropped.
func (i Issue) Skipped() bool {
	var malformed *MalformedRowError
	return errors.Is(i.Err, ErrEmptyRow) || errors.As(i.Err, &malformed)
}
