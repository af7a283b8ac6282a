package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var stdHeader = []string{"Register Name", "Offset", "Read/Write", "Fields", "Default value", "Reset value", "Description"}

func TestBind(t *testing.T) {
	assert := assert.New(t)

	tab := &Table{
		Header: []string{" Description ", "Fields", "Register Name", "Offset", "Read/Write", "Default value", "Reset value", "Extra"},
		Rows: [][]string{
			{"control", "EN", "CTRL", "0x0", "RW", "1", "0", "ignored"},
			{"", "MODE [3:1]"},
			{},
		},
	}

	rows, err := tab.Bind(DefaultColumns())
	assert.NoError(err)
	assert.Equal([]Row{
		{Line: 2, RegisterName: "CTRL", Offset: "0x0", Access: "RW", Field: "EN", Default: "1", Reset: "0", Description: "control"},
		{Line: 3, Field: "MODE [3:1]"},
		{Line: 4},
	}, rows)
}

func TestBindMissing(t *testing.T) {
	assert := assert.New(t)

	tab := &Table{
		Header: []string{"Register Name", "Read/Write", "Fields", "Default value", "reset value", "Description"},
	}

	rows, err := tab.Bind(DefaultColumns())
	assert.Nil(rows)

	var missing *ErrMissingColumns
	assert.True(errors.As(err, &missing))
	assert.Equal([]string{"Offset", "Reset value"}, missing.Columns)
	assert.Contains(err.Error(), "Offset")
	assert.Contains(err.Error(), "Reset value")
}

func TestBindEmpty(t *testing.T) {
	assert := assert.New(t)

	_, err := (&Table{}).Bind(DefaultColumns())
	assert.ErrorIs(err, ErrTableEmpty)

	var tab *Table
	_, err = tab.Bind(DefaultColumns())
	assert.ErrorIs(err, ErrTableEmpty)
}

func TestBindCustomColumns(t *testing.T) {
	assert := assert.New(t)

	cols := DefaultColumns()
	cols.RegisterName = "Register"
	cols.Access = "Access"

	tab := &Table{
		Header: []string{"Register", "Offset", "Access", "Fields", "Default value", "Reset value", "Description"},
		Rows:   [][]string{{"STATUS", "4", "RO", "BUSY", "", "", ""}},
	}

	rows, err := tab.Bind(cols)
	assert.NoError(err)
	assert.Equal("STATUS", rows[0].RegisterName)
	assert.Equal("RO", rows[0].Access)

	_, err = tab.Bind(DefaultColumns())
	assert.Error(err)
}
