package sheet

import (
	"errors"
	"strings"

	"github.com/ezrec/ralgen/translate"
)

var f = translate.From

var (
	ErrTableEmpty = errors.New(f("table has no header row"))
)

// ErrMissingColumns lists the required header names absent from a table.
type ErrMissingColumns struct {
	Columns []string
}

func (err *ErrMissingColumns) Error() string {
	return f("missing required columns: %v", strings.Join(err.Columns, ", "))
}

// ErrFormat is returned for input files with an unsupported extension.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("unsupported table format '%v'", string(err))
}

// ErrSheetMissing is returned when a named worksheet is not in a workbook.
type ErrSheetMissing string

func (err ErrSheetMissing) Error() string {
	return f("worksheet '%v' not found", string(err))
}

// ErrValue is returned for cell text that is not a non-negative integer.
type ErrValue string

func (err ErrValue) Error() string {
	return f("'%v' is not a number", string(err))
}
