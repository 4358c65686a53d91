// Package nn builds small neural networks out of scalar autodiff values.
//
// This package provides building blocks composed on top of an autodiff.Tape:
//   - Parameter: named trainable leaf with gradient access
//   - Neuron: weighted sum of inputs plus bias
//   - Layer: parallel neurons over the same inputs
//   - Network: layers chained in sequence
//
// Modules only call the tape's operation constructors; gradients are computed
// by tape.Backward on whatever scalar the caller derives from the outputs.
package nn

import "github.com/born-ml/grad/internal/autodiff"

// Module is the interface shared by Layer and Network.
//
// Modules can be composed to build deeper architectures:
//
//	tape := autodiff.NewTape()
//	rng := nn.NewRand(42)
//	net := nn.NewNetwork(tape, 3, []int{4, 4, 1}, rng)
//	out := net.Forward(nn.Inputs(tape, 1, 2, 3))
type Module interface {
	// Forward builds the output nodes for the given input nodes.
	Forward(input []autodiff.Value) []autodiff.Value

	// Parameters returns every weight and bias owned by the module, directly
	// or through nested modules, in a stable order.
	Parameters() []*Parameter

	// ZeroGrad resets the gradient of every parameter to 0.
	ZeroGrad()
}

// Inputs creates one leaf per value, for use as network input.
func Inputs(tape *autodiff.Tape, data ...float64) []autodiff.Value {
	leaves := make([]autodiff.Value, len(data))
	for i, x := range data {
		leaves[i] = tape.Leaf(x)
	}
	return leaves
}

// Data reads back the forward values of the given nodes.
func Data(tape *autodiff.Tape, values []autodiff.Value) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = tape.Data(v)
	}
	return out
}
