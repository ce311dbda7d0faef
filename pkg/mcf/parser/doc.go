// Package parser implements the recursive-descent MCF parsing engine.
//
// MCF infers document structure purely from relative indentation, like
// an off-side-rule language. A section's header line ends with the
// section body marker; every direct entry of the section body sits at
// one fixed, deeper indentation level. Options are key/value pairs
// separated by the delimiter marker, with single- and multi-line
// comments, quoted long values spanning multiple lines, and include
// directives that splice an externally loaded document into the tree at
// parse time.
//
// All syntax markers are runtime-configurable strings (see Syntax); the
// engine scans byte-at-a-time through a scanner.Cursor rather than with
// regular expressions. Extracted names and values pass through
// pluggable post-processors (see Processors) whose defaults trim
// surrounding whitespace.
//
// # Basic Usage
//
//	p := parser.NewParser()
//	doc, err := p.ParseString("server:\n    port = 8080\n", "app.cfg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Section("server").Value("port", ""))
//
// Includes require a Loader:
//
//	p := parser.NewParser().WithLoader(source.NewFileSource("/etc/app", nil))
//	doc, err := p.ParseFile("main.cfg")
//
// # Errors
//
// Parsing aborts on the first error. Every error is a located
// *errors.Error carrying the line number of the document being scanned
// at the point of failure; errors inside included documents carry line
// numbers relative to the included source.
//
// # Concurrency
//
// A Parser is safe for concurrent use once configured: parsing keeps
// all mutable state in per-call structures. Configure first, then
// share.
package parser
