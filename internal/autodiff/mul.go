package autodiff

// Mul returns a new node a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
//
// Mul(a, a) is valid: both contributions land on a.
func (t *Tape) Mul(a, b Value) Value {
	x, y := t.at(a, "Tape.Mul"), t.at(b, "Tape.Mul")
	return t.push(node{data: x.data * y.data, op: OpMul, left: a, right: b})
}

func (t *Tape) backwardMul(n *node) {
	left, right := &t.nodes[n.left], &t.nodes[n.right]
	leftData, rightData := left.data, right.data
	left.grad += n.grad * rightData
	right.grad += n.grad * leftData
}
