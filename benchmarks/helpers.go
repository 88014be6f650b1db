// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/valuekit/internal/primitives"
)

// GenWideArena creates one root with n leaf children.
func GenWideArena(n int) *primitives.Arena[string] {
	if n < 1 {
		n = 1
	}
	tb := primitives.NewTreeBuilder[string]().Push("root")
	for i := 0; i < n; i++ {
		tb.Leaf(fmt.Sprintf("leaf%d", i))
	}
	arena, _ := tb.Build()
	return arena
}

// GenDeepArena creates a chain of depth nested nodes ending in one leaf.
func GenDeepArena(depth int) *primitives.Arena[string] {
	if depth < 1 {
		depth = 1
	}
	tb := primitives.NewTreeBuilder[string]()
	for i := 0; i < depth; i++ {
		tb.Push(fmt.Sprintf("c%d", i))
	}
	tb.Leaf("leaf")
	arena, _ := tb.Build()
	return arena
}

// GenBalancedArena creates a complete tree with the given fan-out and depth.
func GenBalancedArena(fanout, depth int) *primitives.Arena[int] {
	tb := primitives.NewTreeBuilder[int]()
	next := 0
	var grow func(level int)
	grow = func(level int) {
		next++
		if level == depth {
			tb.Leaf(next)
			return
		}
		tb.Push(next)
		for i := 0; i < fanout; i++ {
			grow(level + 1)
		}
		tb.Up()
	}
	grow(0)
	arena, _ := tb.Build()
	return arena
}

// GenSnapshotYAML generates YAML bytes for a snapshot of a wide arena.
func GenSnapshotYAML(numNodes int) []byte {
	data, err := yaml.Marshal(GenWideArena(numNodes).Snapshot())
	if err != nil {
		panic(err)
	}
	return data
}
