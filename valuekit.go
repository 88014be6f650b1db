// Package valuekit provides small, general-purpose value types: a tri-state
// boolean, a fixed-capacity copyable string, a shallow multi-child tree view
// with an index arena, and copyable wrappers for non-capturing functions.
//
// The types live in internal/primitives; this package is the public surface.
package valuekit

import "github.com/comalice/valuekit/internal/primitives"

type (
	Tristate = primitives.Tristate

	RuneArray     = primitives.RuneArray
	CapacityError = primitives.CapacityError

	NodeID = primitives.NodeID

	CopyFn     = primitives.CopyFn
	CopyFnMut  = primitives.CopyFnMut
	CopyFnOnce = primitives.CopyFnOnce
)

// CopyString is a fixed-capacity rune buffer; see NewCopyString.
type CopyString[A RuneArray] = primitives.CopyString[A]

// NonBinaryTree is a read-only node with borrowed children.
type NonBinaryTree[T any] = primitives.NonBinaryTree[T]

// Arena stores tree nodes addressed by NodeID; children precede parents.
type Arena[T any] = primitives.Arena[T]

// ArenaSnapshot is the serializable form of an Arena.
type ArenaSnapshot[T any] = primitives.ArenaSnapshot[T]

// NodeSnapshot is the serializable form of one Arena node.
type NodeSnapshot[T any] = primitives.NodeSnapshot[T]

// TreeBuilder builds an Arena with Push/Leaf/Up.
type TreeBuilder[T any] = primitives.TreeBuilder[T]

const (
	Else  = primitives.Else
	True  = primitives.True
	False = primitives.False
)

var (
	ErrInvalidTristate  = primitives.ErrInvalidTristate
	ErrCapacityExceeded = primitives.ErrCapacityExceeded
	ErrUnknownNode      = primitives.ErrUnknownNode
	ErrCapturingFunc    = primitives.ErrCapturingFunc
)

// Tristate conversions.
var (
	FromBool      = primitives.FromBool
	FromOptional  = primitives.FromOptional
	FromOK        = primitives.FromOK
	ParseTristate = primitives.ParseTristate
)

// CopyFn constructors.
var (
	NewCopyFn           = primitives.NewCopyFn
	NewCopyFnMut        = primitives.NewCopyFnMut
	NewCopyFnOnce       = primitives.NewCopyFnOnce
	NewCopyFnStrict     = primitives.NewCopyFnStrict
	NewCopyFnMutStrict  = primitives.NewCopyFnMutStrict
	NewCopyFnOnceStrict = primitives.NewCopyFnOnceStrict
)

// NewCopyString copies text into a CopyString of capacity len(A). Text with
// more runes than the capacity fails with ErrCapacityExceeded.
func NewCopyString[A RuneArray](text string) (CopyString[A], error) {
	return primitives.NewCopyString[A](text)
}

// CopyStringFromBytes is NewCopyString over an owned UTF-8 buffer.
func CopyStringFromBytes[A RuneArray](b []byte) (CopyString[A], error) {
	return primitives.CopyStringFromBytes[A](b)
}

// CopyStringFromRunes is NewCopyString over an owned rune buffer.
func CopyStringFromRunes[A RuneArray](r []rune) (CopyString[A], error) {
	return primitives.CopyStringFromRunes[A](r)
}

// MustCopyString panics if text does not fit.
func MustCopyString[A RuneArray](text string) CopyString[A] {
	return primitives.MustCopyString[A](text)
}

// NewTree returns a leaf node.
func NewTree[T any](value T) *NonBinaryTree[T] {
	return primitives.NewTree(value)
}

// NewTreeWithChildren returns a node borrowing children in order.
func NewTreeWithChildren[T any](value T, children ...*NonBinaryTree[T]) *NonBinaryTree[T] {
	return primitives.NewTreeWithChildren(value, children...)
}

// NewArena returns an empty Arena with room for capacity nodes.
func NewArena[T any](capacity int) *Arena[T] {
	return primitives.NewArena[T](capacity)
}

// ArenaFromSnapshot rebuilds and validates an Arena.
func ArenaFromSnapshot[T any](snap ArenaSnapshot[T]) (*Arena[T], error) {
	return primitives.ArenaFromSnapshot(snap)
}

// NewTreeBuilder returns an empty TreeBuilder.
func NewTreeBuilder[T any]() *TreeBuilder[T] {
	return primitives.NewTreeBuilder[T]()
}
