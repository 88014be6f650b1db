// NonBinaryTree is a read-only view of a tree node with any number of
// children.
//
// The node does not own its children. It stores pointers to nodes the caller
// built earlier and keeps alive, so trees are assembled bottom-up. Nothing in
// this type mutates, traverses or searches; callers bring their own
// algorithms. Acyclicity is the caller's obligation. Use Arena when it must
// hold by construction.
package primitives

// NonBinaryTree holds a value and borrowed references to child nodes. Both
// are fixed at construction.
type NonBinaryTree[T any] struct {
	value    T
	children []*NonBinaryTree[T]
}

// NewTree returns a leaf node.
func NewTree[T any](value T) *NonBinaryTree[T] {
	return &NonBinaryTree[T]{value: value}
}

// NewTreeWithChildren returns a node referencing children in order. The
// pointers are copied, so the caller may reuse the slice; the nodes they
// point to are shared, not cloned.
func NewTreeWithChildren[T any](value T, children ...*NonBinaryTree[T]) *NonBinaryTree[T] {
	n := &NonBinaryTree[T]{value: value}
	if len(children) > 0 {
		n.children = make([]*NonBinaryTree[T], len(children))
		copy(n.children, children)
	}
	return n
}

// Value returns the value stored at n.
func (n *NonBinaryTree[T]) Value() T { return n.value }

// Children returns the child references in order. The slice is a copy; the
// nodes are not.
func (n *NonBinaryTree[T]) Children() []*NonBinaryTree[T] {
	out := make([]*NonBinaryTree[T], len(n.children))
	copy(out, n.children)
	return out
}

// Child returns child i. It panics if i is out of range.
func (n *NonBinaryTree[T]) Child(i int) *NonBinaryTree[T] {
	return n.children[i]
}

// Len returns the number of children.
func (n *NonBinaryTree[T]) Len() int { return len(n.children) }

// IsLeaf reports whether n has no children.
func (n *NonBinaryTree[T]) IsLeaf() bool { return len(n.children) == 0 }
