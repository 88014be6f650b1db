package production

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/comalice/valuekit/internal/primitives"
)

// TreeVisualizer renders arena trees as Graphviz DOT.
type TreeVisualizer[T any] struct {
	// Label formats node values. Defaults to fmt's %v.
	Label func(T) string
}

// ExportDOT generates Graphviz DOT source for every node of arena, with
// highlighted nodes filled.
func (v *TreeVisualizer[T]) ExportDOT(arena *primitives.Arena[T], highlight []primitives.NodeID) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Tree {
  rankdir=TB;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	active := make(map[primitives.NodeID]bool, len(highlight))
	for _, id := range highlight {
		active[id] = true
	}

	for i := 0; i < arena.Len(); i++ {
		id := primitives.NodeID(i)
		value, _ := arena.Value(id)
		style := ""
		if active[id] {
			style = ` style=filled fillcolor=lightgreen`
		}
		buf.WriteString(fmt.Sprintf("  \"n%d\" [label=\"%s\"%s];\n", id, dotEscape(v.label(value)), style))
	}

	for i := 0; i < arena.Len(); i++ {
		id := primitives.NodeID(i)
		kids, _ := arena.Children(id)
		for pos, c := range kids {
			buf.WriteString(fmt.Sprintf("  \"n%d\" -> \"n%d\" [label=\"%d\"];\n", id, c, pos))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportTreeDOT renders a NonBinaryTree view. Nodes reachable along several
// paths are emitted once. The view must be acyclic.
func (v *TreeVisualizer[T]) ExportTreeDOT(root *primitives.NonBinaryTree[T]) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Tree {
  rankdir=TB;
  node [shape=box, fontsize=10, style=rounded];
`)
	ids := make(map[*primitives.NonBinaryTree[T]]int)
	v.renderNode(&buf, root, ids)
	buf.WriteString("}\n")
	return buf.String()
}

// renderNode emits n and its edges depth-first, returning n's DOT id.
func (v *TreeVisualizer[T]) renderNode(buf *bytes.Buffer, n *primitives.NonBinaryTree[T], ids map[*primitives.NonBinaryTree[T]]int) int {
	if id, seen := ids[n]; seen {
		return id
	}
	id := len(ids)
	ids[n] = id
	buf.WriteString(fmt.Sprintf("  \"n%d\" [label=\"%s\"];\n", id, dotEscape(v.label(n.Value()))))
	for pos, c := range n.Children() {
		cid := v.renderNode(buf, c, ids)
		buf.WriteString(fmt.Sprintf("  \"n%d\" -> \"n%d\" [label=\"%d\"];\n", id, cid, pos))
	}
	return id
}

func (v *TreeVisualizer[T]) label(value T) string {
	if v.Label != nil {
		return v.Label(value)
	}
	return fmt.Sprintf("%v", value)
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\x00", "")

func dotEscape(s string) string {
	return dotReplacer.Replace(s)
}
