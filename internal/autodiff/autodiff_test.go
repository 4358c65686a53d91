package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForward tests the forward value of every operation.
func TestForward(t *testing.T) {
	tests := []struct {
		name  string
		build func(tape *autodiff.Tape) autodiff.Value
		want  float64
		op    autodiff.Op
	}{
		{
			name:  "leaf",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Leaf(1.5) },
			want:  1.5,
			op:    autodiff.OpLeaf,
		},
		{
			name:  "add",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Add(tape.Leaf(2), tape.Leaf(3)) },
			want:  5,
			op:    autodiff.OpAdd,
		},
		{
			name:  "sub",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Sub(tape.Leaf(2), tape.Leaf(3)) },
			want:  -1,
			op:    autodiff.OpSub,
		},
		{
			name:  "mul",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Mul(tape.Leaf(2), tape.Leaf(3)) },
			want:  6,
			op:    autodiff.OpMul,
		},
		{
			name:  "sigmoid of zero",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Sigmoid(tape.Leaf(0)) },
			want:  0.5,
			op:    autodiff.OpSigmoid,
		},
		{
			name:  "sigmoid positive",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Sigmoid(tape.Leaf(2)) },
			want:  1 / (1 + math.Exp(-2)),
			op:    autodiff.OpSigmoid,
		},
		{
			name:  "sigmoid negative",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Sigmoid(tape.Leaf(-2)) },
			want:  math.Exp(-2) / (1 + math.Exp(-2)),
			op:    autodiff.OpSigmoid,
		},
		{
			name:  "log",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Log(tape.Leaf(math.E)) },
			want:  1,
			op:    autodiff.OpLog,
		},
		{
			name:  "pow",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Pow(tape.Leaf(3), 2) },
			want:  9,
			op:    autodiff.OpPow,
		},
		{
			name:  "fractional pow",
			build: func(tape *autodiff.Tape) autodiff.Value { return tape.Pow(tape.Leaf(4), 0.5) },
			want:  2,
			op:    autodiff.OpPow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.NewTape()
			v := tt.build(tape)

			assert.InDelta(t, tt.want, tape.Data(v), 1e-9)
			assert.Equal(t, tt.op, tape.Op(v))
			assert.Zero(t, tape.Grad(v), "fresh node must start with zero gradient")
		})
	}
}

// TestSigmoid_Saturation tests that large arguments do not overflow.
func TestSigmoid_Saturation(t *testing.T) {
	tape := autodiff.NewTape()

	hi := tape.Sigmoid(tape.Leaf(1000))
	lo := tape.Sigmoid(tape.Leaf(-1000))

	assert.Equal(t, 1.0, tape.Data(hi))
	assert.Equal(t, 0.0, tape.Data(lo))

	tape.Backward(lo)
	assert.False(t, math.IsNaN(tape.Grad(tape.Parents(lo)[0])))
}

// TestParents tests operand order and arity.
func TestParents(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)

	assert.Empty(t, tape.Parents(a))
	assert.Equal(t, []autodiff.Value{a, b}, tape.Parents(tape.Sub(a, b)))
	assert.Equal(t, []autodiff.Value{b, a}, tape.Parents(tape.Sub(b, a)))
	assert.Equal(t, []autodiff.Value{a}, tape.Parents(tape.Log(a)))

	p := tape.Pow(b, 3)
	assert.Equal(t, []autodiff.Value{b}, tape.Parents(p))
	assert.Equal(t, 3.0, tape.Exponent(p))
	assert.Zero(t, tape.Exponent(a))
}

// TestBackward_EndToEnd tests e = log((a*b)^2) with a=5, b=10.
func TestBackward_EndToEnd(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(5)
	b := tape.Leaf(10)
	c := tape.Mul(a, b)
	d := tape.Pow(c, 2)
	e := tape.Log(d)

	require.Equal(t, 50.0, tape.Data(c))
	require.Equal(t, 2500.0, tape.Data(d))
	assert.InDelta(t, math.Log(2500), tape.Data(e), 1e-9)

	tape.Backward(e)

	assert.Equal(t, 1.0, tape.Grad(e))
	assert.InDelta(t, 1.0/2500, tape.Grad(d), 1e-12)
	assert.InDelta(t, 0.04, tape.Grad(c), 1e-9)
	assert.InDelta(t, 0.4, tape.Grad(a), 1e-9)
	assert.InDelta(t, 0.2, tape.Grad(b), 1e-9)
}

// TestBackward_SharedLeaf tests that a leaf used twice receives the sum of
// both path contributions.
func TestBackward_SharedLeaf(t *testing.T) {
	tape := autodiff.NewTape()
	w := tape.Leaf(0.7)
	a := tape.Leaf(3)
	b := tape.Leaf(-4)

	out := tape.Add(tape.Mul(w, a), tape.Mul(w, b))
	tape.Backward(out)

	assert.InDelta(t, tape.Data(a)+tape.Data(b), tape.Grad(w), 1e-12)
	assert.InDelta(t, 0.7, tape.Grad(a), 1e-12)
	assert.InDelta(t, 0.7, tape.Grad(b), 1e-12)
}

// TestBackward_SharedIntermediate tests a diamond through a non-leaf node.
func TestBackward_SharedIntermediate(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Leaf(3)
	c := tape.Mul(x, x)              // x²
	d := tape.Add(c, c)              // 2x²
	out := tape.Mul(d, tape.Leaf(5)) // 10x²

	tape.Backward(out)

	assert.InDelta(t, 5.0, tape.Grad(d), 1e-12)
	assert.InDelta(t, 10.0, tape.Grad(c), 1e-12)
	assert.InDelta(t, 60.0, tape.Grad(x), 1e-12) // 20x
}

// TestBackward_Sub tests that the second operand receives a negative gradient.
func TestBackward_Sub(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)
	tape.Backward(tape.Sub(a, b))

	assert.Equal(t, 1.0, tape.Grad(a))
	assert.Equal(t, -1.0, tape.Grad(b))

	tape2 := autodiff.NewTape()
	x := tape2.Leaf(4)
	tape2.Backward(tape2.Sub(x, x))
	assert.Zero(t, tape2.Grad(x))
}

// TestBackward_Unreachable tests that nodes outside the root's graph keep
// their gradient.
func TestBackward_Unreachable(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(3)
	u := tape.Leaf(7)
	side := tape.Mul(u, a)
	out := tape.Add(a, b)
	later := tape.Mul(out, u)

	tape.Backward(side)
	uGrad := tape.Grad(u)
	require.Equal(t, 2.0, uGrad)

	tape.Backward(out)

	assert.Equal(t, uGrad, tape.Grad(u))
	assert.Equal(t, 1.0, tape.Grad(side))
	assert.Zero(t, tape.Grad(later))
	assert.Equal(t, 7.0+1.0, tape.Grad(a)) // 7 from side, 1 from out
}

// TestOrder tests the reverse topological order.
func TestOrder(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)
	b := tape.Leaf(2)
	unused := tape.Leaf(3)
	c := tape.Mul(a, b)
	d := tape.Add(c, a)
	e := tape.Mul(d, c)

	order := tape.Order(e)

	require.Len(t, order, 5)
	assert.Equal(t, e, order[0])
	assert.NotContains(t, order, unused)

	position := make(map[autodiff.Value]int, len(order))
	for i, v := range order {
		_, dup := position[v]
		require.False(t, dup, "node %d visited twice", v)
		position[v] = i
	}
	for _, v := range order {
		for _, p := range tape.Parents(v) {
			assert.Less(t, position[v], position[p], "node %d must come before its parent %d", v, p)
		}
	}
}

// TestZeroGrad tests that zeroing makes a second pass match the first.
func TestZeroGrad(t *testing.T) {
	tape := autodiff.NewTape()
	w := tape.Leaf(0.3)
	bias := tape.Leaf(-0.2)
	params := []autodiff.Value{w, bias}
	mark := tape.Len()

	forward := func() autodiff.Value {
		x := tape.Leaf(1.5)
		return tape.Sigmoid(tape.Add(tape.Mul(w, x), bias))
	}

	tape.Backward(forward())
	first := []float64{tape.Grad(w), tape.Grad(bias)}
	tape.Truncate(mark)

	// Without zeroing the gradients double.
	tape.Backward(forward())
	assert.InDelta(t, 2*first[0], tape.Grad(w), 1e-12)
	tape.Truncate(mark)

	tape.ZeroGrad(params...)
	for _, p := range params {
		assert.Zero(t, tape.Grad(p))
	}
	tape.ZeroGrad(params...)
	for _, p := range params {
		assert.Zero(t, tape.Grad(p))
	}

	tape.Backward(forward())
	assert.Equal(t, first, []float64{tape.Grad(w), tape.Grad(bias)})
}

// TestNonFinite tests that invalid numeric input propagates instead of failing.
func TestNonFinite(t *testing.T) {
	tape := autodiff.NewTape()

	neg := tape.Log(tape.Leaf(-1))
	assert.True(t, math.IsNaN(tape.Data(neg)))

	inf := tape.Pow(tape.Leaf(0), -1)
	assert.True(t, math.IsInf(tape.Data(inf), 1))

	out := tape.Add(neg, tape.Leaf(1))
	assert.True(t, math.IsNaN(tape.Data(out)))
	assert.NotPanics(t, func() { tape.Backward(out) })

	zero := tape.Log(tape.Leaf(0))
	assert.InDelta(t, math.Log(autodiff.LogForwardEpsilon), tape.Data(zero), 1e-9)
}

// TestTape_Panics tests handle validation.
func TestTape_Panics(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(1)

	assert.Panics(t, func() { tape.Add(a, autodiff.Value(5)) })
	assert.Panics(t, func() { tape.Grad(autodiff.Value(-1)) })
	assert.Panics(t, func() { tape.Backward(autodiff.Value(1)) })
	assert.Panics(t, func() { tape.Truncate(2) })
}

// TestTape_Truncate tests releasing a forward pass.
func TestTape_Truncate(t *testing.T) {
	tape := autodiff.NewTape()
	w := tape.Leaf(2)
	mark := tape.Len()

	x := tape.Leaf(3)
	tape.Backward(tape.Mul(w, x))
	require.Equal(t, 3, tape.Len())

	tape.Truncate(mark)

	assert.Equal(t, 1, tape.Len())
	assert.Equal(t, 3.0, tape.Grad(w))
	assert.Panics(t, func() { tape.Data(x) })
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "leaf", autodiff.OpLeaf.String())
	assert.Equal(t, "sigmoid", autodiff.OpSigmoid.String())
	assert.Equal(t, "pow", autodiff.OpPow.String())
	assert.Equal(t, "unknown", autodiff.Op(200).String())
	assert.Equal(t, 2, autodiff.OpMul.Arity())
	assert.Equal(t, 1, autodiff.OpLog.Arity())
	assert.Zero(t, autodiff.OpLeaf.Arity())
}
