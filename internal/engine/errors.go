package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult reports that the filtered dataset is empty. Recoverable:
// callers surface it as "no data matches the selected filters", never as a
// crash.
var ErrEmptyResult = errors.New("no data matches the selected filters")

// ErrInvalidRequest reports a malformed aggregation request (unknown
// dimension, duplicate dimension, or unknown aggregate function).
var ErrInvalidRequest = errors.New("invalid aggregation request")

// DataFormatError is fatal for a load: the upload is rejected and the
// previous dataset, if any, stays active.
type DataFormatError struct {
	Reason         string
	MissingColumns []string
}

func (e *DataFormatError) Error() string {
	if len(e.MissingColumns) > 0 {
		return fmt.Sprintf("data format error: %s (missing columns: %s)",
			e.Reason, strings.Join(e.MissingColumns, ", "))
	}
	return "data format error: " + e.Reason
}

// RowWarning records a skipped input row. Recoverable: the row is dropped and
// the warning reported, the rest of the file still loads.
type RowWarning struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (w RowWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}
