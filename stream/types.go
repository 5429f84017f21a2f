// Package stream reads and writes newline-delimited FEEN record files.
//
// A record file holds one position per line. Blank lines are skipped, and a
// line whose first non-space character is '#' is a comment. Errors carry the
// one-based line number of the offending record.
//
// Headers and comments are not part of FEEN canonicalization; each record
// line is standard FEEN text passed to the codec unchanged.
package stream

import (
	"fmt"

	"github.com/variantkit/feen/feen"
)

// Record is one parsed position with its source location.
type Record struct {
	Line     int    // one-based line number in the source
	Text     string // the record line as read, trimmed
	Position *feen.Position
}

// RecordError wraps a codec failure with the line it occurred on.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
