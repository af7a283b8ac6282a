// Package field parses the free text found in the Fields column of a register
// table into bit-field descriptors.
//
// A field cell holds an identifier, optionally followed by a bit range:
//
//	BUFFER_SIZE [15:0]
//	ENABLE
//
// Anything after the first field is ignored. Cells that do not start with an
// identifier parse as Empty and are never emitted.
package field
