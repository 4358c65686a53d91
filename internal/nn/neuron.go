package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/grad/internal/autodiff"
)

// Neuron computes a weighted sum of its inputs plus a bias.
//
// Performs: y = w_0*x_0 + ... + w_{n-1}*x_{n-1} + b
//
// No activation is applied; callers apply one to the returned node if needed.
// Weights and bias are drawn from U[-1, 1).
type Neuron struct {
	tape    *autodiff.Tape
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with nIn weights.
//
// Panics if nIn < 1.
func NewNeuron(tape *autodiff.Tape, nIn int, rng *rand.Rand) *Neuron {
	if nIn < 1 {
		panic(fmt.Sprintf("NewNeuron: expected at least 1 input, got %d", nIn))
	}

	weights := make([]*Parameter, nIn)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("weight.%d", i), tape, Uniform(rng, -1, 1))
	}
	bias := NewParameter("bias", tape, Uniform(rng, -1, 1))

	return &Neuron{
		tape:    tape,
		weights: weights,
		bias:    bias,
	}
}

// Forward builds the neuron output from Mul and Add nodes.
//
// Panics if len(input) differs from the number of weights.
func (n *Neuron) Forward(input []autodiff.Value) autodiff.Value {
	if len(input) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(input)))
	}

	out := n.tape.Mul(n.weights[0].Value(), input[0])
	for i := 1; i < len(n.weights); i++ {
		out = n.tape.Add(out, n.tape.Mul(n.weights[i].Value(), input[i]))
	}
	return n.tape.Add(out, n.bias.Value())
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets the gradients of all weights and the bias.
func (n *Neuron) ZeroGrad() {
	ZeroGrad(n.Parameters())
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

func (n *Neuron) prefix(path string) {
	for _, p := range n.Parameters() {
		p.prefix(path)
	}
}
