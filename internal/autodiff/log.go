package autodiff

import "math"

// Log offsets. The forward and backward passes use different epsilons.
const (
	// LogForwardEpsilon is added to the argument before taking the logarithm.
	LogForwardEpsilon = 1e-10
	// LogBackwardEpsilon is added to the argument in the gradient denominator.
	LogBackwardEpsilon = 1e-8
)

// Log returns a new node ln(a + LogForwardEpsilon).
//
// Backward:
//
//	∂L/∂a = ∂L/∂output / (a + LogBackwardEpsilon)
//
// Note: the epsilon only guards log(0). Arguments with a + ε <= 0 produce
// NaN or -Inf, which propagate through the graph unchanged.
func (t *Tape) Log(a Value) Value {
	x := t.at(a, "Tape.Log")
	return t.push(node{data: math.Log(x.data + LogForwardEpsilon), op: OpLog, left: a})
}

func (t *Tape) backwardLog(n *node) {
	in := &t.nodes[n.left]
	in.grad += n.grad / (in.data + LogBackwardEpsilon)
}
