// Package profile loads syntax profiles from YAML files.
//
// A profile describes a dialect of the MCF grammar: the literal syntax
// markers, the trimming behavior of the post-processors, and the
// include depth limit. Loading follows the usual pipeline: read, parse
// YAML, apply defaults, validate.
//
// Example profile:
//
//	markers:
//	  key_value_delimiter: ":"
//	  section_begin: "{"
//	  line_comment: "#"
//	trim:
//	  names: true
//	  values: true
//	max_include_depth: 8
//
// Unset markers keep their defaults, so a profile only names what it
// changes.
package profile
