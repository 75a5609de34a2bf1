// Package addr implements Address, the (node id, offset) pair used to name
// any position inside a tree, including the special "nowhere" address used
// for empty trees and iterator ends.
package addr

import (
	"fmt"

	"github.com/flier/gbtree/offset"
)

// Address names a position inside a tree: a node id together with an
// offset within that node, or the special "nowhere" value.
type Address struct {
	ID      int
	Offset  offset.Offset
	nowhere bool
}

// Nowhere returns the address that names no position at all.
func Nowhere() Address { return Address{nowhere: true} }

// New builds an address at the given node id and offset.
func New(id int, off offset.Offset) Address { return Address{ID: id, Offset: off} }

// IsNowhere reports whether this is the "nowhere" address.
func (a Address) IsNowhere() bool { return a.nowhere }

// IsItem reports whether this address names an existing item, given the
// item count of the node it points into.
func (a Address) IsItem(itemCount int) bool {
	if a.nowhere {
		return false
	}
	return a.Offset.Lt(itemCount)
}

// IsBack reports whether this address is a valid insertion point (offset in
// [0, itemCount]) in the node it points into.
func (a Address) IsBack(itemCount int) bool {
	if a.nowhere {
		return false
	}
	return a.Offset.Le(itemCount)
}

// Eq reports whether two addresses name the same position.
func (a Address) Eq(b Address) bool {
	if a.nowhere || b.nowhere {
		return a.nowhere == b.nowhere
	}
	return a.ID == b.ID && a.Offset.Eq(b.Offset)
}

func (a Address) String() string {
	if a.nowhere {
		return "nowhere"
	}
	return fmt.Sprintf("(%d, %s)", a.ID, a.Offset)
}
