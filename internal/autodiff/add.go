package autodiff

// Add returns a new node a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
func (t *Tape) Add(a, b Value) Value {
	x, y := t.at(a, "Tape.Add"), t.at(b, "Tape.Add")
	return t.push(node{data: x.data + y.data, op: OpAdd, left: a, right: b})
}

func (t *Tape) backwardAdd(n *node) {
	t.nodes[n.left].grad += n.grad
	t.nodes[n.right].grad += n.grad
}
