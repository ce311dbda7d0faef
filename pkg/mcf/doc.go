// Package mcf provides parsing for MCF (Mercator Configuration
// Format), a whitespace-indentation-sensitive hierarchical
// configuration format.
//
// An MCF document is a tree of sections holding key/value options and
// nested sections; structure is inferred purely from relative
// indentation:
//
//	server:
//	    listen = 0.0.0.0:8080
//	    tls:
//	        cert = /etc/certs/server.pem   // comment to end of line
//	    motd = "multi
//	line value"
//	[include] limits = limits.cfg
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: the document tree (sections, options, documents)
// - scanner: the character cursor used to scan text
// - parser: the recursive-descent engine, syntax markers, post-processors
// - errors: located error types
// - source: implementations of the external document load capability
// - writer: persisting a tree back to MCF text
// - profile: syntax dialects loaded from YAML
// - manager: keeping a parsed tree up to date (fsnotify, cron)
//
// # Basic Usage
//
// Parse a document from memory:
//
//	doc, err := mcf.ParseString("Flag\nname = value\n", "inline")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Value("name", ""))
//
// Parse a file, resolving includes relative to its directory:
//
//	doc, err := mcf.ParseFile("/etc/app/main.cfg")
//
// # Error Handling
//
// Parsing stops at the first error. Errors are *errors.Error values
// with a kind, a message, and the source name and line number of the
// document being scanned at the point of failure:
//
//	[indentation] entry indented by 6, expected 4
//	  --> main.cfg:12
package mcf
