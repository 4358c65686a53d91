package autodiff

// Sub returns a new node a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a += outputGrad
//   - d(a-b)/db = -1, so grad_b -= outputGrad
func (t *Tape) Sub(a, b Value) Value {
	x, y := t.at(a, "Tape.Sub"), t.at(b, "Tape.Sub")
	return t.push(node{data: x.data - y.data, op: OpSub, left: a, right: b})
}

func (t *Tape) backwardSub(n *node) {
	t.nodes[n.left].grad += n.grad
	t.nodes[n.right].grad -= n.grad
}
