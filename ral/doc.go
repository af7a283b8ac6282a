// Package ral generates UVM register abstraction layer models from register
// tables.
//
// Rows are grouped into registers by the Grouper: a row with a register name
// opens a new group, and the field cells of that row and of every following
// unnamed row belong to it. Each group is emitted as a uvm_reg class, in table
// order. After the table, a single uvm_reg_block class instantiates every
// distinct register name, builds the default map and locks the model.
//
// Field cells that do not parse are dropped without error. Attach a Diagnose
// hook to the Generator to observe them.
package ral
