// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the outcome of parsing a field cell.
//
// Empty text is not a field. Bare is an identifier only, a single bit at
// position 0. Ranged is an identifier with an explicit [msb:lsb] range.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	Empty  Kind = iota // empty
	Bare               // bare
	Ranged             // ranged
)

// MaxBit is the highest bit position a range may name.
const MaxBit = 1<<16 - 1

// Descriptor describes one bit-field of a register.
type Descriptor struct {
	Name  string // Field name, verbatim.
	Width int    // Width in bits, MSB - LSB + 1 for ranged fields.
	LSB   int    // Least significant bit position.
	MSB   int    // Most significant bit position.
}

// Accepted reports if the descriptor may be emitted.
func (desc Descriptor) Accepted() bool {
	return len(desc.Name) != 0 && desc.Width > 0
}

func (desc Descriptor) String() string {
	return fmt.Sprintf("%v [%d:%d]", desc.Name, desc.MSB, desc.LSB)
}

// Parse parses a single field cell.
//
// A bare identifier always yields Width 1 at bit 0. A range is not checked for
// MSB >= LSB, so a Ranged result may have a non-positive Width; use Accepted
// before emitting it.
func Parse(text string) (desc Descriptor, kind Kind) {
	sc := scanner{text: strings.TrimSpace(text)}

	name, ok := sc.identifier()
	if !ok {
		return
	}

	desc = Descriptor{Name: name, Width: 1}
	kind = Bare

	msb, lsb, ok := sc.bitRange()
	if !ok {
		return
	}

	desc.MSB = msb
	desc.LSB = lsb
	desc.Width = msb - lsb + 1
	kind = Ranged

	return
}

// scanner walks a field cell one byte at a time.
type scanner struct {
	text string
	pos  int
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func (sc *scanner) peek() (c byte, ok bool) {
	if sc.pos >= len(sc.text) {
		return
	}
	return sc.text[sc.pos], true
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.text) && isSpace(sc.text[sc.pos]) {
		sc.pos++
	}
}

func (sc *scanner) expect(want byte) bool {
	sc.skipSpace()
	c, ok := sc.peek()
	if !ok || c != want {
		return false
	}
	sc.pos++
	return true
}

func (sc *scanner) identifier() (name string, ok bool) {
	c, ok := sc.peek()
	if !ok || !isIdentStart(c) {
		return "", false
	}

	start := sc.pos
	for sc.pos < len(sc.text) && isIdentPart(sc.text[sc.pos]) {
		sc.pos++
	}

	return sc.text[start:sc.pos], true
}

// number scans a bit position, at most MaxBit.
func (sc *scanner) number() (value int, ok bool) {
	sc.skipSpace()

	start := sc.pos
	for sc.pos < len(sc.text) && isDigit(sc.text[sc.pos]) {
		sc.pos++
	}
	if start == sc.pos {
		return
	}

	value, err := strconv.Atoi(sc.text[start:sc.pos])
	if err != nil || value > MaxBit {
		return
	}

	return value, true
}

// bitRange scans "[msb:lsb]". On failure the scanner position is restored.
func (sc *scanner) bitRange() (msb, lsb int, ok bool) {
	mark := sc.pos
	defer func() {
		if !ok {
			sc.pos = mark
		}
	}()

	if !sc.expect('[') {
		return
	}
	if msb, ok = sc.number(); !ok {
		return
	}
	if ok = sc.expect(':'); !ok {
		return
	}
	if lsb, ok = sc.number(); !ok {
		return
	}
	ok = sc.expect(']')

	return
}
