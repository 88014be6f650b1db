package builder

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/valuekit" // the core package
)

// Spec describes a tree top-down. Build turns it into an arena bottom-up.
type Spec[T any] struct {
	Value    T         `json:"value" yaml:"value"`
	Children []Spec[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

// Option pattern for configuring specs
type Option[T any] func(*Spec[T])

// New creates a leaf spec
func New[T any](value T, opts ...Option[T]) Spec[T] {
	s := Spec[T]{Value: value}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Composite creates a spec with children in order
func Composite[T any](value T, children ...Spec[T]) Spec[T] {
	return New(value, WithChildren(children...))
}

// WithChildren appends children to a spec.
func WithChildren[T any](children ...Spec[T]) Option[T] {
	return func(s *Spec[T]) { s.Children = append(s.Children, children...) }
}

// Size returns the number of nodes in s.
func (s Spec[T]) Size() int {
	n := 1
	for _, c := range s.Children {
		n += c.Size()
	}
	return n
}

// Build appends every spec to a new arena and returns it with one root per
// spec, in order.
func Build[T any](specs ...Spec[T]) (*valuekit.Arena[T], []valuekit.NodeID) {
	tb := valuekit.NewTreeBuilder[T]()
	for _, s := range specs {
		add(tb, s)
	}
	return tb.Build()
}

func add[T any](tb *valuekit.TreeBuilder[T], s Spec[T]) {
	if len(s.Children) == 0 {
		tb.Leaf(s.Value)
		return
	}
	tb.Push(s.Value)
	for _, c := range s.Children {
		add(tb, c)
	}
	tb.Up()
}

// View builds s and returns its root as a NonBinaryTree.
func View[T any](s Spec[T]) *valuekit.NonBinaryTree[T] {
	arena, roots := Build(s)
	// Build always yields exactly one root per spec.
	root, _ := arena.View(roots[0])
	return root
}

// ParseYAML decodes a single tree spec, or a YAML sequence of them.
func ParseYAML[T any](data []byte) ([]Spec[T], error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("empty tree document")
	}
	doc := node.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var specs []Spec[T]
		if err := doc.Decode(&specs); err != nil {
			return nil, fmt.Errorf("decode tree list: %w", err)
		}
		return specs, nil
	}
	var s Spec[T]
	if err := doc.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return []Spec[T]{s}, nil
}
