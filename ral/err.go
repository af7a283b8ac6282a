package ral

import (
	"github.com/ezrec/ralgen/translate"
)

var f = translate.From

// ErrDuplicateRegister reports a register name used by more than one group.
type ErrDuplicateRegister struct {
	Name  string
	Line  int // Row of the repeated group.
	First int // Row of the first group.
}

func (err *ErrDuplicateRegister) Error() string {
	return f("line %d register %v already defined at line %d", err.Line, err.Name, err.First)
}

// ErrFile attaches a file name to a conversion failure.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
