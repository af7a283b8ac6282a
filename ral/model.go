package ral

import (
	"iter"
	"slices"

	"github.com/ezrec/ralgen/internal"
)

// Model is the ordered list of register groups seen in a table.
type Model struct {
	groups []*Group
}

// Add appends a finalized group.
func (m *Model) Add(group *Group) {
	m.groups = append(m.groups, group)
}

// Groups returns every group in table order, duplicates included.
func (m *Model) Groups() iter.Seq[*Group] {
	return slices.Values(m.groups)
}

// Registers returns the first group of each distinct register name, in
// first-seen order.
func (m *Model) Registers() iter.Seq[*Group] {
	return internal.IterSeqUnique(m.Groups(), func(g *Group) string { return g.Name })
}

// Names returns the distinct register names in first-seen order.
func (m *Model) Names() (names []string) {
	for group := range m.Registers() {
		names = append(names, group.Name)
	}
	return
}
