// Package ast defines the document tree produced by parsing MCF
// (Mercator Configuration Format) text.
//
// A parsed document is a tree of Sections. Each Section holds an ordered
// list of Options and an ordered list of child Sections. The two lists
// are kept separate: the relative order between an option and a section
// at the same nesting level is not recorded.
//
// Every node in a tree shares the same Owner, an opaque identity handle
// that is propagated into documents spliced in by include directives.
// The Owner carries no parsing semantics.
//
// # Core Types
//
// Document: a Section tied to the source it was loaded from
//
// Section: named node with ordered options and child sections
//
// Option: name/value leaf
//
// Owner: opaque shared identity for a whole tree
//
// Location: source position (file, line) for diagnostics
package ast
