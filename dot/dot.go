// Package dot renders a tree's node structure as a Graphviz DOT graph, for
// visual debugging. Grounded on original_source/src/dot.rs and
// btree.rs's dot_write/dot_write_node (the engine's #[cfg(feature = "dot")]
// surface).
package dot

import (
	"fmt"
	"io"

	"github.com/flier/gbtree"
	"github.com/flier/gbtree/pkg/res"
)

// Write emits a DOT description of t to w: one record node per tree node
// (labeled via label, applied to each of the node's items in order), one
// edge per parent-to-child link. Read-only; walks the whole tree once.
func Write[T, K any](w io.Writer, t *btree.Tree[T, K], label func(T) string) res.Result[int] {
	total := 0

	write := func(format string, args ...any) bool {
		n, err := fmt.Fprintf(w, format, args...)
		total += n
		return err == nil
	}

	if !write("digraph tree {\n\tnode [shape=record];\n") {
		return res.Wrap(total, fmt.Errorf("gbtree/dot: write header"))
	}

	root := t.Root()
	if root.IsSome() {
		if err := writeNode(w, t, root.Unwrap(), label, &total); err != nil {
			return res.Wrap(total, err)
		}
	}

	if !write("}") {
		return res.Wrap(total, fmt.Errorf("gbtree/dot: write footer"))
	}

	return res.Ok(total)
}

func writeNode[T, K any](w io.Writer, t *btree.Tree[T, K], id int, label func(T) string, total *int) error {
	info := t.Node(id)
	name := fmt.Sprintf("n%d", id)

	n, err := fmt.Fprintf(w, "\t%s [label=\"", name)
	*total += n
	if err != nil {
		return err
	}

	if info.Parent.IsSome() {
		n, err = fmt.Fprintf(w, "(%d)|", info.Parent.Unwrap())
		*total += n
		if err != nil {
			return err
		}
	}

	for i, item := range info.Items {
		if i > 0 {
			n, err = io.WriteString(w, "|")
			*total += n
			if err != nil {
				return err
			}
		}
		n, err = io.WriteString(w, label(item))
		*total += n
		if err != nil {
			return err
		}
	}

	n, err = fmt.Fprintf(w, "(%d)\"];\n", id)
	*total += n
	if err != nil {
		return err
	}

	for _, childID := range info.Children {
		if err := writeNode(w, t, childID, label, total); err != nil {
			return err
		}

		childName := fmt.Sprintf("n%d", childID)
		n, err = fmt.Fprintf(w, "\t%s -> %s\n", name, childName)
		*total += n
		if err != nil {
			return err
		}
	}

	return nil
}
