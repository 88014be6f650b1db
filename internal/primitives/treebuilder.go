// Package primitives includes a fluent builder for Arena trees.
package primitives

// TreeBuilder builds an Arena top-down while the arena itself is filled
// bottom-up: an open node is only appended once Up closes it.
type TreeBuilder[T any] struct {
	arena *Arena[T]
	stack []treeFrame[T] // For nesting Up()
	roots []NodeID
}

type treeFrame[T any] struct {
	value    T
	children []NodeID
}

// NewTreeBuilder creates an empty TreeBuilder.
func NewTreeBuilder[T any]() *TreeBuilder[T] {
	return &TreeBuilder[T]{arena: &Arena[T]{}}
}

// Push opens a node. Nodes added until the matching Up become its children.
func (b *TreeBuilder[T]) Push(value T) *TreeBuilder[T] {
	b.stack = append(b.stack, treeFrame[T]{value: value})
	return b
}

// Leaf adds a childless node under the open node, or as a root.
func (b *TreeBuilder[T]) Leaf(value T) *TreeBuilder[T] {
	b.attach(b.arena.Leaf(value))
	return b
}

// Up closes the open node. A no-op when nothing is open.
func (b *TreeBuilder[T]) Up() *TreeBuilder[T] {
	if len(b.stack) == 0 {
		return b
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	// Children were appended by this builder, so Node cannot fail.
	id, _ := b.arena.Node(top.value, top.children...)
	b.attach(id)
	return b
}

// Depth returns the number of open nodes.
func (b *TreeBuilder[T]) Depth() int { return len(b.stack) }

// Build closes every open node and returns the arena with its roots in the
// order they were completed.
func (b *TreeBuilder[T]) Build() (*Arena[T], []NodeID) {
	for len(b.stack) > 0 {
		b.Up()
	}
	return b.arena, append([]NodeID(nil), b.roots...)
}

func (b *TreeBuilder[T]) attach(id NodeID) {
	if len(b.stack) == 0 {
		b.roots = append(b.roots, id)
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, id)
}
