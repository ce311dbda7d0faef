package ast

// Document is a Section tied to the external source it was loaded from.
// One Document is created for the top-level parse and one per include
// directive encountered; an included Document shares the Owner of the
// tree it is spliced into and is attached as an ordinary child Section.
type Document struct {
	Section

	// SourceName identifies the file or stream the document was loaded
	// from. It is used only for include resolution and diagnostics.
	SourceName string

	// Includes lists the source names of documents spliced directly
	// into this one by include directives, in the order encountered.
	Includes []string
}

// NewDocument creates an empty document for the given source name.
func NewDocument(sourceName string, owner *Owner) *Document {
	return &Document{
		Section:    Section{Owner: owner},
		SourceName: sourceName,
	}
}
