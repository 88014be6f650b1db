package testutil

import (
	"fmt"
	"strings"

	"github.com/comalice/valuekit"
)

// TreeAdapter provides a common interface over both tree representations.
// This allows running the same assertions on pointer views and arenas.
type TreeAdapter[T any] interface {
	Value() T
	Children() []TreeAdapter[T]
}

// ViewAdapter wraps a NonBinaryTree node.
type ViewAdapter[T any] struct {
	node *valuekit.NonBinaryTree[T]
}

// NewViewAdapter creates a new adapter for a pointer tree.
func NewViewAdapter[T any](node *valuekit.NonBinaryTree[T]) *ViewAdapter[T] {
	return &ViewAdapter[T]{node: node}
}

func (a *ViewAdapter[T]) Value() T {
	return a.node.Value()
}

func (a *ViewAdapter[T]) Children() []TreeAdapter[T] {
	kids := a.node.Children()
	out := make([]TreeAdapter[T], len(kids))
	for i, k := range kids {
		out[i] = NewViewAdapter(k)
	}
	return out
}

// ArenaAdapter wraps one node of an Arena.
type ArenaAdapter[T any] struct {
	arena *valuekit.Arena[T]
	id    valuekit.NodeID
}

// NewArenaAdapter creates a new adapter for node id of arena. It panics if id
// is not in arena, since a test cannot continue from there.
func NewArenaAdapter[T any](arena *valuekit.Arena[T], id valuekit.NodeID) *ArenaAdapter[T] {
	if !arena.Has(id) {
		panic(fmt.Sprintf("testutil: node %d not in arena of %d", id, arena.Len()))
	}
	return &ArenaAdapter[T]{arena: arena, id: id}
}

func (a *ArenaAdapter[T]) Value() T {
	v, _ := a.arena.Value(a.id)
	return v
}

func (a *ArenaAdapter[T]) Children() []TreeAdapter[T] {
	kids, _ := a.arena.Children(a.id)
	out := make([]TreeAdapter[T], len(kids))
	for i, k := range kids {
		out[i] = NewArenaAdapter(a.arena, k)
	}
	return out
}

// Shape renders a tree as value(child,child(...)) for compact comparisons.
func Shape[T any](t TreeAdapter[T]) string {
	var b strings.Builder
	writeShape(&b, t)
	return b.String()
}

func writeShape[T any](b *strings.Builder, t TreeAdapter[T]) {
	fmt.Fprintf(b, "%v", t.Value())
	kids := t.Children()
	if len(kids) == 0 {
		return
	}
	b.WriteByte('(')
	for i, k := range kids {
		if i > 0 {
			b.WriteByte(',')
		}
		writeShape(b, k)
	}
	b.WriteByte(')')
}

// Preorder returns the values of t in depth-first, parent-first order.
func Preorder[T any](t TreeAdapter[T]) []T {
	out := []T{t.Value()}
	for _, k := range t.Children() {
		out = append(out, Preorder(k)...)
	}
	return out
}
