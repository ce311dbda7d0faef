// Package errors provides the located error types raised while parsing
// MCF documents.
//
// Every error carries a Kind, a message, and the Location (source name
// and line number) of the document being scanned at the point of
// failure. The parser propagates the first error it encounters and
// discards any partially built tree; there is no multi-error
// collection.
//
// Error format:
//
//	[indentation] entry indented by 6, expected 4
//	  --> app.cfg:12
package errors
