package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/grad/internal/autodiff"
)

// Layer is a set of independent neurons reading the same input vector.
//
// Forward returns one output node per neuron.
type Layer struct {
	inFeatures  int
	outFeatures int
	neurons     []*Neuron
}

// NewLayer creates a layer of outFeatures neurons with inFeatures inputs each.
//
// Panics if either size is < 1.
func NewLayer(tape *autodiff.Tape, inFeatures, outFeatures int, rng *rand.Rand) *Layer {
	if outFeatures < 1 {
		panic(fmt.Sprintf("NewLayer: expected at least 1 output, got %d", outFeatures))
	}

	neurons := make([]*Neuron, outFeatures)
	for i := range neurons {
		neurons[i] = NewNeuron(tape, inFeatures, rng)
		neurons[i].prefix(fmt.Sprintf("neurons.%d", i))
	}

	return &Layer{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		neurons:     neurons,
	}
}

// Forward applies every neuron to input.
func (l *Layer) Forward(input []autodiff.Value) []autodiff.Value {
	if len(input) != l.inFeatures {
		panic(fmt.Sprintf("Layer.Forward: expected %d inputs, got %d", l.inFeatures, len(input)))
	}

	output := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		output[i] = n.Forward(input)
	}
	return output
}

// Parameters returns the parameters of each neuron, in neuron order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every neuron.
func (l *Layer) ZeroGrad() {
	ZeroGrad(l.Parameters())
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the input width.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

func (l *Layer) prefix(path string) {
	for _, p := range l.Parameters() {
		p.prefix(path)
	}
}
