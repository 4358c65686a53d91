package autodiff

import (
	"fmt"
	"io"
	"strings"
)

// Format renders a single node as Value(data=…, grad=…, op=…).
func (t *Tape) Format(v Value) string {
	n := t.at(v, "Tape.Format")
	return fmt.Sprintf("Value(data=%g, grad=%g, op=%s)", n.data, n.grad, n.op)
}

// Print writes the graph rooted at root to w, one node per line, indenting
// parents two spaces deeper than their child. A node reached again through
// another path is not printed twice.
//
// The printer keeps its own visited set and does not touch gradients.
func (t *Tape) Print(w io.Writer, root Value) error {
	t.at(root, "Tape.Print")
	p := printer{tape: t, w: w, visited: make(map[Value]bool)}
	return p.print(root, 0)
}

type printer struct {
	tape    *Tape
	w       io.Writer
	visited map[Value]bool
}

func (p *printer) print(v Value, depth int) error {
	if _, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), p.tape.Format(v)); err != nil {
		return err
	}
	p.visited[v] = true

	for _, parent := range p.tape.Parents(v) {
		if p.visited[parent] {
			continue
		}
		if err := p.print(parent, depth+1); err != nil {
			return err
		}
	}
	return nil
}
