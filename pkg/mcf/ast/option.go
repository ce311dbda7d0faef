package ast

// Option is a leaf entry of a section: a name with an associated value.
// A value-less entry in the source text produces an Option whose value
// is the post-processed empty string. Names are not required to be
// non-empty; the grammar is permissive.
type Option struct {
	Name  string
	Value string
	Owner *Owner
}
