// Package writer persists a document tree back to MCF text.
//
// Output uses the configured syntax markers and a fixed indentation
// unit per nesting level. Values that contain newlines, comment
// markers, or surrounding whitespace are emitted as long values so they
// survive a round trip through the parser. Options are written before
// child sections within each section; the original interleaving is not
// recorded in the tree.
package writer
