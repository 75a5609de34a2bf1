package btree

import (
	"fmt"

	"github.com/flier/gbtree/node"
	"github.com/flier/gbtree/offset"
	"github.com/flier/gbtree/pkg/opt"
)

// ValidationErrorKind classifies what Validate found wrong with a tree.
type ValidationErrorKind int

const (
	MissingNode ValidationErrorKind = iota
	NotBalanced
	WrongParent
	Overflow
	Underflow
	UnsortedNode
	UnsortedFromLeft
	UnsortedFromRight
)

func (k ValidationErrorKind) String() string {
	switch k {
	case MissingNode:
		return "missing node"
	case NotBalanced:
		return "subtrees at different depths"
	case WrongParent:
		return "node's parent id does not match its actual parent"
	case Overflow:
		return "node is overflowing"
	case Underflow:
		return "node is underflowing"
	case UnsortedNode:
		return "items within a node are not sorted"
	case UnsortedFromLeft:
		return "item sorts before the left separator"
	case UnsortedFromRight:
		return "item sorts after the right separator"
	default:
		return "unknown validation error"
	}
}

// ValidationError reports a single structural inconsistency found by
// Validate, identifying the offending node.
type ValidationError struct {
	Kind ValidationErrorKind
	Node int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gbtree: node %d: %s", e.Node, e.Kind)
}

// Validate walks the whole tree, checking every node's parent pointer,
// balance, internal sort order, and position relative to its ancestors'
// separators. It is meant for tests and debug tooling, not hot paths: a
// balanced tree of N items costs it O(N) work.
func (t *Tree[T, K]) Validate() error {
	root := t.Root()
	if root.IsNone() {
		return nil
	}
	_, err := t.validateNode(root.Unwrap(), opt.None[int](), opt.None[T](), opt.None[T]())
	return err
}

func (t *Tree[T, K]) validateNode(id int, parent opt.Option[int], min, max opt.Option[T]) (int, error) {
	found := t.arena.Get(id)
	if found.IsNone() {
		return 0, &ValidationError{Kind: MissingNode, Node: id}
	}
	n := found.Unwrap()

	if err := t.validateBuffer(id, n, parent, min, max); err != nil {
		return 0, err
	}

	var depth opt.Option[int]
	for i, childID := range n.Children() {
		childMin, childMax := n.Separators(i)
		effMin := childMin
		if effMin.IsNone() {
			effMin = min
		}
		effMax := childMax
		if effMax.IsNone() {
			effMax = max
		}

		childDepth, err := t.validateNode(childID, opt.Some(id), effMin, effMax)
		if err != nil {
			return 0, err
		}

		if depth.IsNone() {
			depth = opt.Some(childDepth)
		} else if depth.Unwrap() != childDepth {
			return 0, &ValidationError{Kind: NotBalanced, Node: id}
		}
	}

	if depth.IsSome() {
		return depth.Unwrap() + 1, nil
	}
	return 0, nil
}

func (t *Tree[T, K]) validateBuffer(id int, n *node.Buffer[T], parent opt.Option[int], min, max opt.Option[T]) error {
	if !optIntEq(n.Parent(), parent) {
		return &ValidationError{Kind: WrongParent, Node: id}
	}

	isRoot := min.IsNone() && max.IsNone() && parent.IsNone()
	if !isRoot {
		bal := node.BalanceOf(n, t.knuth)
		switch {
		case bal.Overflow:
			return &ValidationError{Kind: Overflow, Node: id}
		case bal.Underflow:
			return &ValidationError{Kind: Underflow, Node: id}
		}
	}

	for i := 1; i < n.ItemCount(); i++ {
		prev := n.Item(offset.Of(i - 1)).Unwrap()
		cur := n.Item(offset.Of(i)).Unwrap()
		if t.order.Compare(cur, prev) < 0 {
			return &ValidationError{Kind: UnsortedNode, Node: id}
		}
	}

	if min.IsSome() && n.ItemCount() > 0 {
		first := n.Item(offset.Of(0)).Unwrap()
		if t.order.Compare(min.Unwrap(), first) >= 0 {
			return &ValidationError{Kind: UnsortedFromLeft, Node: id}
		}
	}

	if max.IsSome() && n.ItemCount() > 0 {
		last := n.Item(offset.Of(n.ItemCount() - 1)).Unwrap()
		if t.order.Compare(max.Unwrap(), last) <= 0 {
			return &ValidationError{Kind: UnsortedFromRight, Node: id}
		}
	}

	return nil
}

func optIntEq(a, b opt.Option[int]) bool {
	if a.IsNone() || b.IsNone() {
		return a.IsNone() == b.IsNone()
	}
	return a.Unwrap() == b.Unwrap()
}
