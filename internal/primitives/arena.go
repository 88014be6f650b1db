// Arena stores tree nodes addressed by NodeID.
//
// A node may only reference nodes already in the arena, so every child ID is
// smaller than its parent's. That ordering makes cycles impossible and
// mirrors the bottom-up construction of NonBinaryTree without relying on the
// caller to keep nodes alive. Nodes are never removed or mutated.
//
// An Arena is safe for concurrent reads once construction is finished.
// Construction itself is not synchronized.
package primitives

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownNode is returned when a NodeID does not name a node of the arena.
var ErrUnknownNode = errors.New("unknown node")

// NodeID addresses a node within one Arena.
type NodeID int

type arenaNode[T any] struct {
	value    T
	children []NodeID
}

// Arena is an append-only store of tree nodes. The zero value is empty and
// ready to use.
type Arena[T any] struct {
	nodes []arenaNode[T]
}

// NewArena returns an arena with room for capacity nodes.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{nodes: make([]arenaNode[T], 0, capacity)}
}

// Leaf appends a node without children.
func (a *Arena[T]) Leaf(value T) NodeID {
	a.nodes = append(a.nodes, arenaNode[T]{value: value})
	return NodeID(len(a.nodes) - 1)
}

// Node appends a node referencing children in order. Every child must
// already exist in a.
func (a *Arena[T]) Node(value T, children ...NodeID) (NodeID, error) {
	for i, c := range children {
		if !a.Has(c) {
			return -1, fmt.Errorf("child %d: %w: %d", i, ErrUnknownNode, c)
		}
	}
	n := arenaNode[T]{value: value}
	if len(children) > 0 {
		n.children = make([]NodeID, len(children))
		copy(n.children, children)
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1), nil
}

// Has reports whether id names a node of a.
func (a *Arena[T]) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// Len returns the number of nodes.
func (a *Arena[T]) Len() int { return len(a.nodes) }

// Value returns the value stored at id.
func (a *Arena[T]) Value(id NodeID) (T, error) {
	if !a.Has(id) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return a.nodes[id].value, nil
}

// Children returns a copy of the child IDs of id, in order.
func (a *Arena[T]) Children(id NodeID) ([]NodeID, error) {
	if !a.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	out := make([]NodeID, len(a.nodes[id].children))
	copy(out, a.nodes[id].children)
	return out, nil
}

// Roots returns the nodes no other node references, in ID order.
func (a *Arena[T]) Roots() []NodeID {
	referenced := make([]bool, len(a.nodes))
	for _, n := range a.nodes {
		for _, c := range n.children {
			referenced[c] = true
		}
	}
	var roots []NodeID
	for i, ref := range referenced {
		if !ref {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// View materializes id as a NonBinaryTree. Only nodes reachable from id are
// built. A node referenced from several parents becomes one shared
// *NonBinaryTree.
func (a *Arena[T]) View(id NodeID) (*NonBinaryTree[T], error) {
	if !a.Has(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	// Children precede parents, so ascending ID order builds bottom-up.
	views := make(map[NodeID]*NonBinaryTree[T])
	for _, i := range a.reachable(id) {
		n := a.nodes[i]
		kids := make([]*NonBinaryTree[T], len(n.children))
		for j, c := range n.children {
			kids[j] = views[c]
		}
		views[i] = NewTreeWithChildren(n.value, kids...)
	}
	return views[id], nil
}

// reachable returns id and every node below it, in ascending ID order.
func (a *Arena[T]) reachable(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	stack := []NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range a.nodes[top].children {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	out := make([]NodeID, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// NodeSnapshot is the serializable form of one arena node.
type NodeSnapshot[T any] struct {
	Value    T        `json:"value" yaml:"value" toml:"value"`
	Children []NodeID `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// ArenaSnapshot is the serializable form of an Arena. Node i has ID i.
type ArenaSnapshot[T any] struct {
	Nodes []NodeSnapshot[T] `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Snapshot returns a deep copy of the arena in serializable form.
func (a *Arena[T]) Snapshot() ArenaSnapshot[T] {
	snap := ArenaSnapshot[T]{Nodes: make([]NodeSnapshot[T], len(a.nodes))}
	for i, n := range a.nodes {
		snap.Nodes[i].Value = n.value
		if len(n.children) > 0 {
			snap.Nodes[i].Children = append([]NodeID(nil), n.children...)
		}
	}
	return snap
}

// ArenaFromSnapshot rebuilds an arena, rejecting any node that references a
// node at or after its own position.
func ArenaFromSnapshot[T any](snap ArenaSnapshot[T]) (*Arena[T], error) {
	a := NewArena[T](len(snap.Nodes))
	for i, n := range snap.Nodes {
		if _, err := a.Node(n.Value, n.Children...); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	return a, nil
}
