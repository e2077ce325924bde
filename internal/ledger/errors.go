package ledger

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned when the statement file has no header row at all.
var ErrNoHeader = errors.New("statement has no header row")

// SchemaError reports a missing required column. The whole load fails; no
// partial computation is attempted.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("statement is missing required column %q", e.Column)
}

// DateParseError reports a date cell that matched none of the accepted
// layouts. Fatal for the whole load so results are never computed from a
// partially-read statement.
type DateParseError struct {
	Row   int // 1-based data row number, excluding the header
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("row %d: unparseable date %q", e.Row, e.Value)
}
