package autodiff

import "math"

// Pow returns a new node a^exponent. The exponent is a constant, not a node.
//
// Backward:
//
//	∂L/∂a = ∂L/∂output * exponent * a^(exponent-1)
//
// A zero base with a negative exponent yields Inf; it is not guarded.
func (t *Tape) Pow(a Value, exponent float64) Value {
	x := t.at(a, "Tape.Pow")
	return t.push(node{data: math.Pow(x.data, exponent), op: OpPow, left: a, exponent: exponent})
}

func (t *Tape) backwardPow(n *node) {
	in := &t.nodes[n.left]
	in.grad += n.grad * n.exponent * math.Pow(in.data, n.exponent-1)
}
