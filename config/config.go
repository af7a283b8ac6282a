// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config holds the options of the RAL generator.
package config

import (
	"errors"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/ralgen/sheet"
	"github.com/ezrec/ralgen/translate"
)

var f = translate.From

// GuardClose selects how the trailing include guard directive is written.
type GuardClose string

const (
	GuardOmit    GuardClose = "omit"    // No trailing directive.
	GuardComment GuardClose = "comment" // Directive written as a comment.
	GuardEmit    GuardClose = "emit"    // Directive written.
)

// OffsetMode selects the address each register is mapped at.
type OffsetMode string

const (
	OffsetFixed  OffsetMode = "fixed"  // Every register at offset 0.
	OffsetColumn OffsetMode = "column" // Offset column of the register row.
)

// Duplicates selects the policy for repeated register names.
type Duplicates string

const (
	DuplicatesAllow  Duplicates = "allow"  // One class per group, one instance per name.
	DuplicatesReject Duplicates = "reject" // Repeated names are an error.
)

// Options configures a generator run.
type Options struct {
	Block        string        `yaml:"block"`        // Register block class name.
	Map          string        `yaml:"map"`          // Default map name.
	Guard        string        `yaml:"guard"`        // Include guard macro.
	GuardClose   GuardClose    `yaml:"guard_close"`  // Trailing guard policy.
	Offsets      OffsetMode    `yaml:"offsets"`      // Map offset policy.
	Duplicates   Duplicates    `yaml:"duplicates"`   // Duplicate register policy.
	Width        int           `yaml:"width"`        // Register width in bits.
	Sheet        string        `yaml:"sheet"`        // Worksheet of a workbook input.
	Descriptions bool          `yaml:"descriptions"` // Emit register descriptions as comments.
	Columns      sheet.Columns `yaml:"columns"`      // Header names.
}

// Default returns the options matching the classic generator output.
func Default() Options {
	return Options{
		Block:      "dma_reg_model",
		Map:        "my_map",
		Guard:      "REG_MODEL",
		GuardClose: GuardOmit,
		Offsets:    OffsetFixed,
		Duplicates: DuplicatesAllow,
		Width:      32,
		Columns:    sheet.DefaultColumns(),
	}
}

// Parse reads YAML options over the defaults. Unknown keys are an error.
func Parse(input io.Reader) (opts Options, err error) {
	opts = Default()

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(&opts)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	err = opts.Validate()

	return
}

// Load reads YAML options from a file.
func Load(path string) (opts Options, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(inf)
}

var reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// Validate checks the options for consistency.
func (opts *Options) Validate() (err error) {
	switch {
	case !reIdentifier.MatchString(opts.Block):
		return &ErrOption{Name: "block", Value: opts.Block}
	case len(opts.Map) == 0:
		return &ErrOption{Name: "map", Value: opts.Map}
	case !reIdentifier.MatchString(opts.Guard):
		return &ErrOption{Name: "guard", Value: opts.Guard}
	case opts.Width <= 0:
		return &ErrOption{Name: "width", Value: opts.Width}
	}

	if err = opts.GuardClose.Set(string(opts.GuardClose)); err != nil {
		return
	}
	if err = opts.Offsets.Set(string(opts.Offsets)); err != nil {
		return
	}
	if err = opts.Duplicates.Set(string(opts.Duplicates)); err != nil {
		return
	}

	seen := make(map[string]bool)
	for _, name := range opts.Columns.Names() {
		if len(name) == 0 || seen[name] {
			return &ErrOption{Name: "columns", Value: name}
		}
		seen[name] = true
	}

	return
}
