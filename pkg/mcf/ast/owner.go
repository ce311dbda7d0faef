package ast

import "github.com/google/uuid"

// Owner is the opaque back-reference shared by every node of a document
// tree. It identifies the tree a node belongs to and nothing more; no
// parsing logic depends on its contents. Documents created for include
// directives receive the same Owner as the tree they are spliced into.
//
// Owner identity is distinct from memory ownership: tree memory is owned
// strictly parent-to-child, while the Owner handle is shared.
type Owner struct {
	id uuid.UUID
}

// NewOwner creates a fresh owner handle with a unique identity.
func NewOwner() *Owner {
	return &Owner{id: uuid.New()}
}

// ID returns the unique identity of this owner.
func (o *Owner) ID() uuid.UUID {
	return o.id
}

// String returns the owner identity as a string.
func (o *Owner) String() string {
	return o.id.String()
}
