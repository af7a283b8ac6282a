// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ral

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/ralgen/config"
	"github.com/ezrec/ralgen/field"
	"github.com/ezrec/ralgen/internal"
)

const (
	ruleShort = "//---------------------------------------"
	ruleLong  = "//-------------------------------------------------------------------------"
)

// textWriter keeps the first write error so emitters can write freely.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// instanceName is the register block member name of a register.
func instanceName(name string) string {
	return "reg_" + strings.ToLower(name)
}

// Emitter renders the text of a RAL model.
type Emitter struct {
	Options  config.Options
	Diagnose func(Diagnostic)
}

func (em *Emitter) diagnose(diag Diagnostic) {
	if em.Diagnose != nil {
		em.Diagnose(diag)
	}
}

// parsedCell is a field cell with its parse result.
type parsedCell struct {
	Cell
	desc field.Descriptor
	kind field.Kind
}

// parsed yields every field cell of a group, parsed, in table order.
func parsed(group *Group) iter.Seq[parsedCell] {
	return func(yield func(parsedCell) bool) {
		for _, cell := range group.Fields {
			desc, kind := field.Parse(cell.Text)
			if !yield(parsedCell{Cell: cell, desc: desc, kind: kind}) {
				return
			}
		}
	}
}

// accept reports if a parsed cell may be emitted, diagnosing those dropped.
func (em *Emitter) accept(group *Group, pc parsedCell) bool {
	switch {
	case pc.kind == field.Empty:
		em.diagnose(Diagnostic{Line: pc.Line, Register: group.Name, Text: pc.Text, Reason: DropUnparsed})
	case !pc.desc.Accepted():
		em.diagnose(Diagnostic{Line: pc.Line, Register: group.Name, Text: pc.Text, Reason: DropWidth})
	default:
		return true
	}
	return false
}

// Fields parses the field cells of a group, keeping only the accepted
// descriptors in table order.
func (em *Emitter) Fields(group *Group) (descs []field.Descriptor) {
	keep := func(pc parsedCell) bool { return em.accept(group, pc) }
	for pc := range internal.IterSeqFilter(parsed(group), keep) {
		descs = append(descs, pc.desc)
	}
	return
}

// resetValue renders the reset of every field of a group.
func (em *Emitter) resetValue(group *Group) string {
	switch {
	case group.Default.Valid:
		return fmt.Sprintf("%d", group.Default.Int)
	case group.Default.Present():
		em.diagnose(Diagnostic{Line: group.Line, Register: group.Name, Text: group.Default.Text, Reason: BadValue})
		return group.Default.Text
	}
	return "0"
}

// offsetValue renders the map offset of a register.
func (em *Emitter) offsetValue(group *Group) string {
	if em.Options.Offsets != config.OffsetColumn {
		return "'h0"
	}

	switch {
	case group.Offset.Valid:
		return fmt.Sprintf("'h%X", group.Offset.Int)
	case group.Offset.Present():
		em.diagnose(Diagnostic{Line: group.Line, Register: group.Name, Text: group.Offset.Text, Reason: BadValue})
		return group.Offset.Text
	}
	return "'h0"
}

// EmitHeader writes the opening include guard.
func (em *Emitter) EmitHeader(w io.Writer) error {
	tw := &textWriter{w: w}
	tw.printf("`ifndef %s\n", em.Options.Guard)
	tw.printf("`define %s\n\n", em.Options.Guard)
	return tw.err
}

// EmitTrailer writes the closing include guard, as selected by GuardClose.
func (em *Emitter) EmitTrailer(w io.Writer) error {
	tw := &textWriter{w: w}
	switch em.Options.GuardClose {
	case config.GuardEmit:
		tw.printf("`endif // %s\n", em.Options.Guard)
	case config.GuardComment:
		tw.printf("//`endif // %s\n", em.Options.Guard)
	}
	return tw.err
}

// EmitRegister writes the uvm_reg class of one group.
//
// A group without accepted fields still gets a complete class, with no field
// members and an empty build function.
func (em *Emitter) EmitRegister(w io.Writer, group *Group) error {
	tw := &textWriter{w: w}
	name := group.Name

	if em.Options.Descriptions && len(group.Description) != 0 {
		for _, line := range strings.Split(group.Description, "\n") {
			tw.printf("// %s\n", strings.TrimRight(line, " \t\r"))
		}
	}

	tw.printf("class %s extends uvm_reg;\n", name)
	tw.printf("  `uvm_object_utils(%s)\n\n", name)
	tw.printf("  %s\n", ruleShort)
	tw.printf("  // Constructor\n")
	tw.printf("  %s\n", ruleShort)
	tw.printf("  function new(string name = \"%s\");\n", name)
	tw.printf("    super.new(name, %d, UVM_NO_COVERAGE);\n", em.Options.Width)
	tw.printf("  endfunction\n\n")

	descs := em.Fields(group)
	reset := em.resetValue(group)

	tw.printf("  %s\n", ruleShort)
	for _, desc := range descs {
		tw.printf("    rand uvm_reg_field %s;\n", desc.Name)
	}

	tw.printf("  %s\n", ruleShort)
	tw.printf("  function void build;\n")
	for _, desc := range descs {
		tw.printf("    %s = uvm_reg_field::type_id::create(\"%s\");\n", desc.Name, desc.Name)
		tw.printf("    %s.configure(.parent(this),\n", desc.Name)
		tw.printf("                           .size(%d),\n", desc.Width)
		tw.printf("                           .lsb_pos(%d),\n", desc.LSB)
		tw.printf("                           .msb_pos(%d),\n", desc.MSB)
		tw.printf("                           .access(\"%s\"),\n", group.Access)
		tw.printf("                           .volatile(0),\n")
		tw.printf("                           .reset(%s),\n", reset)
		tw.printf("                           .has_reset(1),\n")
		tw.printf("                           .is_rand(1),\n")
		tw.printf("                           .individually_accessible(0));\n")
	}
	tw.printf("  endfunction\n")
	tw.printf("endclass\n\n")

	return tw.err
}

// EmitContainer writes the uvm_reg_block class holding one instance of each
// distinct register of the model.
func (em *Emitter) EmitContainer(w io.Writer, model *Model) error {
	tw := &textWriter{w: w}
	block := em.Options.Block

	tw.printf("%s\n", ruleLong)
	tw.printf("//\tRegister Block Definition\n")
	tw.printf("%s\n", ruleLong)
	tw.printf("class %s extends uvm_reg_block;\n", block)
	tw.printf("  `uvm_object_utils(%s)\n\n", block)
	tw.printf("  %s\n", ruleShort)
	tw.printf("  // Register Instances\n")
	tw.printf("  %s\n", ruleShort)
	for group := range model.Registers() {
		tw.printf("  rand %s %s;\n", group.Name, instanceName(group.Name))
	}

	tw.printf("\n  %s\n", ruleShort)
	tw.printf("  // Constructor\n")
	tw.printf("  %s\n", ruleShort)
	tw.printf("  function new (string name = \"\");\n")
	tw.printf("    super.new(name, build_coverage(UVM_NO_COVERAGE));\n")
	tw.printf("  endfunction\n\n")
	tw.printf("  %s\n", ruleShort)
	tw.printf("  // Build Phase\n")
	tw.printf("  %s\n", ruleShort)
	tw.printf("  function void build();\n")
	for group := range model.Registers() {
		inst := instanceName(group.Name)
		tw.printf("    %s = %s::type_id::create(\"%s\");\n", inst, group.Name, inst)
		tw.printf("    %s.build();\n", inst)
		tw.printf("    %s.configure(this);\n", inst)
	}

	tw.printf("    %s\n", ruleShort)
	tw.printf("    // Memory Map Creation and Register Map\n")
	tw.printf("    %s\n", ruleShort)
	tw.printf("    default_map = create_map(\"%s\", 0, 4, UVM_LITTLE_ENDIAN);\n", em.Options.Map)
	for group := range model.Registers() {
		tw.printf("    default_map.add_reg(%s, %s, \"RW\");\n", instanceName(group.Name), em.offsetValue(group))
	}
	tw.printf("    lock_model();\n")
	tw.printf("  endfunction\n")
	tw.printf("endclass\n\n")

	return tw.err
}
