package autodiff

// Order returns every node reachable from root in reverse topological order:
// root first, and each node before all of its parents. Every distinct node
// appears exactly once.
//
// Algorithm:
//  1. Mark root as reached
//  2. Walk indices from root down to 0
//  3. Emit each reached node and mark its parents
//
// A parent always has a smaller index than its children, so by the time the
// walk arrives at a node every node that could reach it has been visited.
func (t *Tape) Order(root Value) []Value {
	t.at(root, "Tape.Order")

	reached := make([]bool, int(root)+1)
	reached[root] = true

	order := make([]Value, 0, len(reached))
	for i := int(root); i >= 0; i-- {
		if !reached[i] {
			continue
		}
		order = append(order, Value(i))

		n := &t.nodes[i]
		switch n.op.Arity() {
		case 2:
			reached[n.right] = true
			fallthrough
		case 1:
			reached[n.left] = true
		}
	}

	return order
}

// Backward computes d(root)/d(v) for every node v reachable from root.
//
// The root gradient is seeded to 1 and each reachable node's rule runs exactly
// once, after all of its children have contributed to its gradient. Gradients
// are accumulated into existing values: call ZeroGrad on reused leaves between
// passes. Nodes not reachable from root are left untouched.
func (t *Tape) Backward(root Value) {
	order := t.Order(root)

	t.nodes[root].grad = 1.0

	for _, v := range order {
		t.propagate(v)
	}
}

// propagate runs the backward rule of v, adding its contributions into the
// gradients of its parents.
func (t *Tape) propagate(v Value) {
	if t.onRule != nil {
		t.onRule(v)
	}

	n := &t.nodes[v]
	switch n.op {
	case OpLeaf:
		// Nothing to propagate.
	case OpAdd:
		t.backwardAdd(n)
	case OpSub:
		t.backwardSub(n)
	case OpMul:
		t.backwardMul(n)
	case OpSigmoid:
		t.backwardSigmoid(n)
	case OpLog:
		t.backwardLog(n)
	case OpPow:
		t.backwardPow(n)
	default:
		panic("Tape.Backward: unknown op " + n.op.String())
	}
}
