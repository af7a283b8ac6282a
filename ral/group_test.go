package ral

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ralgen/sheet"
)

const tableHeader = "Register Name,Offset,Read/Write,Fields,Default value,Reset value,Description\n"

// tableRows binds CSV register table text, with the standard header
// prepended, into rows.
func tableRows(t *testing.T, lines ...string) []sheet.Row {
	t.Helper()

	tab, err := sheet.LoadCSV(strings.NewReader(tableHeader+strings.Join(lines, "\n")+"\n"), ',')
	if err != nil {
		t.Fatal(err)
	}
	rows, err := tab.Bind(sheet.DefaultColumns())
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestGrouperAdd(t *testing.T) {
	assert := assert.New(t)

	gr := &Grouper{}

	done := gr.Add(sheet.Row{Line: 2, RegisterName: " CTRL ", Access: "RW", Field: " EN ", Default: "1"})
	assert.Nil(done)

	done = gr.Add(sheet.Row{Line: 3, Field: "MODE [3:1]", Access: "RO", Default: "7"})
	assert.Nil(done)

	done = gr.Add(sheet.Row{Line: 4})
	assert.Nil(done)

	done = gr.Add(sheet.Row{Line: 5, RegisterName: "STATUS", Access: "RO"})
	if assert.NotNil(done) {
		assert.Equal("CTRL", done.Name)
		assert.Equal(2, done.Line)
		assert.Equal("RW", done.Access)
		assert.Equal(uint64(1), done.Default.Int)
		assert.Equal([]Cell{{2, "EN"}, {3, "MODE [3:1]"}}, done.Fields)
	}

	done = gr.Close()
	if assert.NotNil(done) {
		assert.Equal("STATUS", done.Name)
		assert.Empty(done.Fields)
	}

	assert.Nil(gr.Close())
}

func TestGrouperOrphans(t *testing.T) {
	assert := assert.New(t)

	var diags []Diagnostic
	gr := &Grouper{Diagnose: func(diag Diagnostic) { diags = append(diags, diag) }}

	rows := tableRows(t,
		",,,ORPHAN [3:0],,,",
		",,,,,,",
		"A,0,RW,X,,,",
	)

	groups := slices.Collect(gr.All(slices.Values(rows)))
	if assert.Equal(1, len(groups)) {
		assert.Equal([]Cell{{4, "X"}}, groups[0].Fields)
	}

	assert.Equal([]Diagnostic{{Line: 2, Text: "ORPHAN [3:0]", Reason: DropOrphan}}, diags)
}

func TestGrouperAll(t *testing.T) {
	assert := assert.New(t)

	rows := tableRows(t,
		"A,0,RW,F0,,,",
		",,,F1,,,",
		"B,4,RO,,,,",
		"A,8,WO,F2,,,",
	)

	gr := &Grouper{}
	var names []string
	var counts []int
	for group := range gr.All(slices.Values(rows)) {
		names = append(names, group.Name)
		counts = append(counts, len(group.Fields))
	}

	assert.Equal([]string{"A", "B", "A"}, names)
	assert.Equal([]int{2, 0, 1}, counts)

	// Stopping early does not panic, and yields only the first group.
	gr = &Grouper{}
	var first []string
	for group := range gr.All(slices.Values(rows)) {
		first = append(first, group.Name)
		break
	}
	assert.Equal([]string{"A"}, first)
}

func TestGrouperEmpty(t *testing.T) {
	assert := assert.New(t)

	gr := &Grouper{}
	assert.Empty(slices.Collect(gr.All(slices.Values([]sheet.Row{}))))
}

func TestModel(t *testing.T) {
	assert := assert.New(t)

	model := &Model{}
	a1 := &Group{Name: "A", Line: 2}
	b := &Group{Name: "B", Line: 4}
	a2 := &Group{Name: "A", Line: 5}
	model.Add(a1)
	model.Add(b)
	model.Add(a2)

	assert.Equal([]string{"A", "B"}, model.Names())
	assert.Equal([]*Group{a1, b}, slices.Collect(model.Registers()))
	assert.Equal(3, len(slices.Collect(model.Groups())))
}
