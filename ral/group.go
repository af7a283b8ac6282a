package ral

import (
	"iter"
	"strings"

	"github.com/ezrec/ralgen/sheet"
)

// Cell is one field cell of a register group.
type Cell struct {
	Line int    // Source row.
	Text string // Trimmed cell text.
}

// Group is a register header row and the field cells collected for it.
//
// Access, Default and Reset come from the header row and apply to every field.
type Group struct {
	Name        string
	Line        int
	Offset      sheet.Value
	Access      string
	Default     sheet.Value
	Reset       sheet.Value
	Description string
	Fields      []Cell
}

// Grouper collects table rows into register groups in a single pass.
type Grouper struct {
	Diagnose func(Diagnostic) // If set, receives rows dropped before any register.

	open *Group
}

// Add consumes one row. When the row starts a new register, the previously
// open group is returned, finalized.
func (gr *Grouper) Add(row sheet.Row) (done *Group) {
	name := strings.TrimSpace(row.RegisterName)
	text := strings.TrimSpace(row.Field)

	if len(name) != 0 {
		done = gr.open
		gr.open = &Group{
			Name:        name,
			Line:        row.Line,
			Offset:      sheet.ParseValue(row.Offset),
			Access:      row.Access,
			Default:     sheet.ParseValue(row.Default),
			Reset:       sheet.ParseValue(row.Reset),
			Description: strings.TrimSpace(row.Description),
		}
	}

	if len(text) == 0 {
		return
	}

	if gr.open == nil {
		if gr.Diagnose != nil {
			gr.Diagnose(Diagnostic{Line: row.Line, Text: text, Reason: DropOrphan})
		}
		return
	}

	gr.open.Fields = append(gr.open.Fields, Cell{Line: row.Line, Text: text})

	return
}

// Close finalizes and returns the open group, if any.
func (gr *Grouper) Close() (done *Group) {
	done = gr.open
	gr.open = nil
	return
}

// All groups the rows, yielding each group as it is finalized.
func (gr *Grouper) All(rows iter.Seq[sheet.Row]) iter.Seq[*Group] {
	return func(yield func(*Group) bool) {
		for row := range rows {
			if done := gr.Add(row); done != nil {
				if !yield(done) {
					return
				}
			}
		}
		if done := gr.Close(); done != nil {
			yield(done)
		}
	}
}
