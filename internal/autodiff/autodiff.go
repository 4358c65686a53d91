// Package autodiff implements reverse-mode automatic differentiation over scalars.
//
// Architecture:
//   - Tape: an arena of nodes addressed by stable Value handles
//   - Op: tag recording which operation produced a node
//   - Backward rules: one propagation function per op, dispatched on the tag
//   - Reverse-mode AD: gradients flow from a root back to every ancestor
//
// A node may only reference nodes that already exist on the tape, so a parent
// always has a smaller index than its child. The graph is acyclic by
// construction and descending index order is a valid reverse topological order.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	a := tape.Leaf(5)
//	b := tape.Leaf(10)
//	c := tape.Mul(a, b) // c = a*b
//
//	tape.Backward(c)
//	fmt.Println(tape.Grad(a)) // dc/da = b = 10
package autodiff

import "fmt"

// Value is a handle to a node on a Tape.
//
// A Value is only meaningful for the Tape that created it.
type Value int32

// node is the arena entry behind a Value.
type node struct {
	data     float64
	grad     float64
	op       Op
	left     Value   // first operand, unused for leaves
	right    Value   // second operand, binary ops only
	exponent float64 // OpPow only
}

// Tape owns every node of a computation graph.
//
// Parameters are usually created first and kept for the lifetime of the tape;
// the nodes of a single forward pass are appended after them and released
// together with Truncate once gradients have been read.
type Tape struct {
	nodes []node

	// onRule is invoked with every node whose backward rule runs.
	onRule func(Value)
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Leaf creates a node without parents: an input or a trainable parameter.
func (t *Tape) Leaf(data float64) Value {
	return t.push(node{data: data, op: OpLeaf})
}

// Len returns the number of nodes on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Truncate releases every node created at or after mark.
//
// Typical use is to record mark := tape.Len() after building parameters and
// truncate back to it once a forward/backward pass is finished. Values at or
// beyond mark become invalid.
func (t *Tape) Truncate(mark int) {
	if mark < 0 || mark > len(t.nodes) {
		panic(fmt.Sprintf("Tape.Truncate: mark %d out of range [0, %d]", mark, len(t.nodes)))
	}
	t.nodes = t.nodes[:mark]
}

// Data returns the forward value of v.
func (t *Tape) Data(v Value) float64 {
	return t.at(v, "Tape.Data").data
}

// Grad returns the accumulated gradient of v.
func (t *Tape) Grad(v Value) float64 {
	return t.at(v, "Tape.Grad").grad
}

// Op returns the operation that produced v.
func (t *Tape) Op(v Value) Op {
	return t.at(v, "Tape.Op").op
}

// Exponent returns the exponent of a pow node and 0 for any other op.
func (t *Tape) Exponent(v Value) float64 {
	return t.at(v, "Tape.Exponent").exponent
}

// Parents returns the operands of v in order (first operand first).
// Leaves have no parents.
func (t *Tape) Parents(v Value) []Value {
	n := t.at(v, "Tape.Parents")
	switch n.op.Arity() {
	case 1:
		return []Value{n.left}
	case 2:
		return []Value{n.left, n.right}
	default:
		return nil
	}
}

// ZeroGrad resets the gradient of every given value to 0.
//
// This should be called between backward passes that reuse the same leaves,
// otherwise gradients from previous passes accumulate.
func (t *Tape) ZeroGrad(values ...Value) {
	for _, v := range values {
		t.at(v, "Tape.ZeroGrad").grad = 0
	}
}

// push appends n and returns its handle.
func (t *Tape) push(n node) Value {
	t.nodes = append(t.nodes, n)
	return Value(len(t.nodes) - 1)
}

// at returns the node behind v, panicking if v is not on the tape.
func (t *Tape) at(v Value, method string) *node {
	if v < 0 || int(v) >= len(t.nodes) {
		panic(fmt.Sprintf("%s: value %d not on tape (len %d)", method, v, len(t.nodes)))
	}
	return &t.nodes[v]
}
