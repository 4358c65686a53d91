package autodiff

import "math"

// Sigmoid returns a new node σ(a) = 1 / (1 + exp(-a)).
//
// The forward pass never evaluates exp of a positive argument:
//
//	a >= 0: 1 / (1 + exp(-a))
//	a <  0: exp(a) / (1 + exp(a))
func (t *Tape) Sigmoid(a Value) Value {
	x := t.at(a, "Tape.Sigmoid")
	return t.push(node{data: sigmoid(x.data), op: OpSigmoid, left: a})
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// backwardSigmoid uses the stored output s: dσ/dx = s * (1 - s).
func (t *Tape) backwardSigmoid(n *node) {
	s := n.data
	t.nodes[n.left].grad += n.grad * s * (1 - s)
}
