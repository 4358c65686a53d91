package nn

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
)

// Network is a multi-layer perceptron: layers chained so that each layer's
// output is the next layer's input.
//
// Example:
//
//	net := nn.NewNetwork(tape, 3, []int{3, 2, 1}, rng)
//	out := net.Forward(x) // 1 output node
//
// This is equivalent to:
//
//	h1 := layer0.Forward(x)
//	h2 := layer1.Forward(h1)
//	out := layer2.Forward(h2)
type Network struct {
	inFeatures int
	sizes      []int
	layers     []*Layer
}

// NewNetwork creates a network with inFeatures inputs and one layer per entry
// of sizes.
//
// Panics if sizes is empty or contains a size < 1.
func NewNetwork(tape *autodiff.Tape, inFeatures int, sizes []int, rng *rand.Rand) *Network {
	if len(sizes) == 0 {
		panic("NewNetwork: expected at least one layer")
	}

	layers := make([]*Layer, len(sizes))
	in := inFeatures
	for i, out := range sizes {
		layers[i] = NewLayer(tape, in, out, rng)
		layers[i].prefix(fmt.Sprintf("layers.%d", i))
		in = out
	}

	return &Network{
		inFeatures: inFeatures,
		sizes:      append([]int(nil), sizes...),
		layers:     layers,
	}
}

// Forward threads input through every layer in order.
func (n *Network) Forward(input []autodiff.Value) []autodiff.Value {
	output := input
	for _, layer := range n.layers {
		output = layer.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all layers, in layer order.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets the gradients of every parameter in the network.
func (n *Network) ZeroGrad() {
	ZeroGrad(n.Parameters())
}

// Layers returns the layers in order.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (n *Network) Layer(index int) *Layer {
	if index < 0 || index >= len(n.layers) {
		panic("Network.Layer: index out of bounds")
	}
	return n.layers[index]
}

// InFeatures returns the input width.
func (n *Network) InFeatures() int {
	return n.inFeatures
}

// String renders the architecture, e.g. MLP(in_feat=3, out_features={3, 2, 1}).
func (n *Network) String() string {
	sizes := make([]string, len(n.sizes))
	for i, s := range n.sizes {
		sizes[i] = strconv.Itoa(s)
	}
	return fmt.Sprintf("MLP(in_feat=%d, out_features={%s})", n.inFeatures, strings.Join(sizes, ", "))
}
