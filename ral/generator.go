// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ral

import (
	"bytes"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/ralgen/artifact"
	"github.com/ezrec/ralgen/config"
	"github.com/ezrec/ralgen/sheet"
)

// Generator converts register tables into a RAL model.
type Generator struct {
	Verbose  bool             // If set, logs each register as it is emitted.
	Options  config.Options   // Output options.
	Diagnose func(Diagnostic) // If set, receives every tolerated cell.
	Stdout   io.Writer        // Destination for the "-" output path.
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts config.Options) (gen *Generator) {
	gen = &Generator{
		Options: opts,
		Stdout:  os.Stdout,
	}

	return
}

// checkDuplicates returns an error for the first repeated register name.
func checkDuplicates(rows []sheet.Row) error {
	first := make(map[string]int)
	for _, row := range rows {
		name := strings.TrimSpace(row.RegisterName)
		if len(name) == 0 {
			continue
		}
		if line, ok := first[name]; ok {
			return &ErrDuplicateRegister{Name: name, Line: row.Line, First: line}
		}
		first[name] = row.Line
	}
	return nil
}

// Generate writes the model for the rows to w.
//
// Each register group is emitted as soon as it is complete; the register
// block follows the last group. Nothing is written if the options are invalid
// or, with the reject policy, a register name repeats.
func (gen *Generator) Generate(w io.Writer, rows []sheet.Row) (model *Model, err error) {
	if err = gen.Options.Validate(); err != nil {
		return
	}

	if gen.Options.Duplicates == config.DuplicatesReject {
		if err = checkDuplicates(rows); err != nil {
			return
		}
	}

	em := &Emitter{Options: gen.Options, Diagnose: gen.Diagnose}
	grouper := &Grouper{Diagnose: gen.Diagnose}
	model = &Model{}

	if err = em.EmitHeader(w); err != nil {
		return
	}

	for group := range grouper.All(slices.Values(rows)) {
		if gen.Verbose {
			log.Printf("%v: line %v: %v field cells\n", group.Name, group.Line, len(group.Fields))
		}
		model.Add(group)
		if err = em.EmitRegister(w, group); err != nil {
			return
		}
	}

	if err = em.EmitContainer(w, model); err != nil {
		return
	}

	err = em.EmitTrailer(w)

	return
}

// Rows loads and binds the rows of a table file.
func (gen *Generator) Rows(input string) (rows []sheet.Row, err error) {
	tab, err := sheet.Load(input, gen.Options.Sheet)
	if err != nil {
		return
	}

	return tab.Bind(gen.Options.Columns)
}

// Convert reads the table at input and writes the model to output. An output
// of "-" writes to Stdout.
//
// On failure no output file is created or modified, and the returned error
// names the file concerned.
func (gen *Generator) Convert(input, output string) (err error) {
	rows, err := gen.Rows(input)
	if err != nil {
		err = &ErrFile{Path: input, Err: err}
		return
	}

	render := func(w io.Writer) (err error) {
		model, err := gen.Generate(w, rows)
		if err == nil && gen.Verbose {
			log.Printf("%v: %v registers\n", output, len(model.Names()))
		}
		return
	}

	if output == "-" {
		var buf bytes.Buffer
		if err = render(&buf); err != nil {
			err = &ErrFile{Path: input, Err: err}
			return
		}
		_, err = buf.WriteTo(gen.Stdout)
		return
	}

	if err = artifact.WriteFile(output, render); err != nil {
		err = &ErrFile{Path: output, Err: err}
		return
	}

	return
}
