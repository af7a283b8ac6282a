// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package sheet loads register tables and binds their columns to rows.
package sheet

import (
	"strings"
)

// Columns names the header cells of each logical column.
type Columns struct {
	RegisterName string `yaml:"register_name"`
	Offset       string `yaml:"offset"`
	Access       string `yaml:"access"`
	Fields       string `yaml:"fields"`
	Default      string `yaml:"default"`
	Reset        string `yaml:"reset"`
	Description  string `yaml:"description"`
}

// DefaultColumns returns the standard register table header names.
func DefaultColumns() Columns {
	return Columns{
		RegisterName: "Register Name",
		Offset:       "Offset",
		Access:       "Read/Write",
		Fields:       "Fields",
		Default:      "Default value",
		Reset:        "Reset value",
		Description:  "Description",
	}
}

// Names returns the header names in table order.
func (cols Columns) Names() []string {
	return []string{
		cols.RegisterName,
		cols.Offset,
		cols.Access,
		cols.Fields,
		cols.Default,
		cols.Reset,
		cols.Description,
	}
}

// Table is a header row plus data rows of cell text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Row is one data row of a register table.
type Row struct {
	Line         int // Source row number; the header is row 1.
	RegisterName string
	Offset       string
	Access       string
	Field        string
	Default      string
	Reset        string
	Description  string
}

// Bind maps the table header onto cols and returns the data rows.
//
// Header cells are compared after trimming surrounding whitespace, and the
// comparison is case sensitive. If any column is absent, an
// *ErrMissingColumns naming all of them is returned and no rows are.
func (tab *Table) Bind(cols Columns) (rows []Row, err error) {
	if tab == nil || len(tab.Header) == 0 {
		err = ErrTableEmpty
		return
	}

	index := make(map[string]int, len(tab.Header))
	for n, name := range tab.Header {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = n
		}
	}

	var missing []string
	for _, name := range cols.Names() {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) != 0 {
		err = &ErrMissingColumns{Columns: missing}
		return
	}

	rows = make([]Row, 0, len(tab.Rows))
	for n, cells := range tab.Rows {
		cell := func(name string) string {
			i := index[name]
			if i >= len(cells) {
				return ""
			}
			return cells[i]
		}
		rows = append(rows, Row{
			Line:         n + 2,
			RegisterName: cell(cols.RegisterName),
			Offset:       cell(cols.Offset),
			Access:       cell(cols.Access),
			Field:        cell(cols.Fields),
			Default:      cell(cols.Default),
			Reset:        cell(cols.Reset),
			Description:  cell(cols.Description),
		})
	}

	return
}
