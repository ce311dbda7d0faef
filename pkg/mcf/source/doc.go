// Package source provides implementations of the external load
// capability consumed by the parser: resolving a source name (the
// top-level document or an include directive's target) to its full text
// content.
//
// FileSource reads documents from a root directory on disk.
// MemorySource serves documents from a map, for tests and embedded
// configuration.
//
// Both normalize line terminators to a single '\n' before returning
// text, which is the pre-pass the parsing engine assumes has happened.
package source
