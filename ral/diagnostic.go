package ral

// Reason classifies a Diagnostic.
//
// The String text of a Reason is translated when a Diagnostic is rendered.
type Reason int

//go:generate go tool stringer -linecomment -type=Reason
const (
	DropUnparsed Reason = iota // not a field, dropped
	DropWidth                  // field width not positive, dropped
	DropOrphan                 // field outside any register, dropped
	BadValue                   // value is not a number, emitted verbatim
)

// Diagnostic describes a cell the generator tolerated rather than rejected.
type Diagnostic struct {
	Line     int
	Register string // Empty for DropOrphan.
	Text     string
	Reason   Reason
}

func (diag Diagnostic) String() string {
	if len(diag.Register) == 0 {
		return f("line %d '%v' %v", diag.Line, diag.Text, f(diag.Reason.String()))
	}
	return f("line %d %v '%v' %v", diag.Line, diag.Register, diag.Text, f(diag.Reason.String()))
}
