package sheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// maxEvalSteps bounds the work done evaluating a single cell expression.
const maxEvalSteps = 10000

// Value is an optional numeric table cell.
type Value struct {
	Text  string // Trimmed cell text.
	Int   uint64 // Numeric value, if Valid.
	Valid bool   // Text evaluated to a non-negative integer.
}

// Present reports if the cell held any text.
func (v Value) Present() bool {
	return len(v.Text) != 0
}

func (v Value) String() string {
	if v.Valid {
		return fmt.Sprintf("%d", v.Int)
	}
	return v.Text
}

// Verilog style sized or unsized literal, eg. 32'h0000_00ff or 'b1010.
var reVerilog = regexp.MustCompile(`^([0-9]*)'[sS]?([hHdDbBoO])([0-9a-fA-F_]+)$`)

var verilogBase = map[byte]int{
	'h': 16, 'H': 16,
	'd': 10, 'D': 10,
	'b': 2, 'B': 2,
	'o': 8, 'O': 8,
}

// Prefixed Go integer literal, eg. 0x10, 0B1_0000 or 0o17.
var rePrefixed = regexp.MustCompile(`^0[xXbBoO][0-9a-fA-F_]+$`)

// Zero padded decimal inside an expression, eg. the 010 of "010 + 4".
var reZeroPad = regexp.MustCompile(`(^|[^0-9A-Za-z_.])0+([0-9])`)

// ParseValue evaluates a numeric cell.
//
// Plain digits are always decimal, so "010" is ten. Prefixed Go integer
// literals (0x10, 0b1_0000, 0o17) and Verilog literals (8'h10) are
// converted directly. Anything else is evaluated as a Starlark expression, so
// cells such as "0x1000 + 4*2" or "1 << 4" are accepted. Spreadsheet floats
// with no fractional part ("16.0") are accepted as integers.
//
// Text that does not evaluate is kept in Text with Valid unset.
func ParseValue(text string) (v Value) {
	v.Text = strings.TrimSpace(text)
	if len(v.Text) == 0 {
		return
	}

	base := -1
	switch {
	case isDigits(v.Text):
		base = 10
	case rePrefixed.MatchString(v.Text):
		base = 0
	}
	if base >= 0 {
		if u64, err := strconv.ParseUint(v.Text, base, 64); err == nil {
			v.Int = u64
			v.Valid = true
		}
		return
	}

	if match := reVerilog.FindStringSubmatch(v.Text); match != nil {
		digits := strings.ReplaceAll(match[3], "_", "")
		u64, err := strconv.ParseUint(digits, verilogBase[match[2][0]], 64)
		if err == nil {
			v.Int = u64
			v.Valid = true
		}
		return
	}

	if u64, err := evalExpr(v.Text); err == nil {
		v.Int = u64
		v.Valid = true
	}

	return
}

// isDigits reports if text is only decimal digits.
func isDigits(text string) bool {
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(text) != 0
}

// evalExpr evaluates a cell expression with Starlark.
//
// Starlark has no legacy octal, so zero padded decimals are unpadded first.
func evalExpr(expr string) (value uint64, err error) {
	if strings.ContainsAny(expr, "\r\n;") {
		err = ErrValue(expr)
		return
	}

	thread := starlark.Thread{Name: "cell"}
	thread.SetMaxExecutionSteps(maxEvalSteps)
	opts := syntax.FileOptions{}
	prog := "rc=" + reZeroPad.ReplaceAllString(expr, "${1}${2}") + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "cell", prog, nil)
	if err != nil {
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		u64, ok := rc.Uint64()
		if !ok {
			err = ErrValue(expr)
			return
		}
		value = u64
	case starlark.Float:
		fv := float64(rc)
		if fv < 0 || fv != math.Trunc(fv) || fv >= math.MaxUint64 {
			err = ErrValue(expr)
			return
		}
		value = uint64(fv)
	default:
		err = ErrValue(expr)
	}

	return
}
