// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/born-ml/grad/autodiff"
	"github.com/born-ml/grad/internal/nn"
)

// Module interface shared by Layer and Network.
type Module = nn.Module

// Parameter represents a trainable weight or bias.
type Parameter = nn.Parameter

// NewParameter creates a named leaf on tape.
func NewParameter(name string, tape *autodiff.Tape, data float64) *Parameter {
	return nn.NewParameter(name, tape, data)
}

// Neuron computes a weighted sum of inputs plus bias.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn weights drawn from U[-1, 1).
func NewNeuron(tape *autodiff.Tape, nIn int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(tape, nIn, rng)
}

// Layer is a set of neurons over the same input.
type Layer = nn.Layer

// NewLayer creates a layer of outFeatures neurons.
func NewLayer(tape *autodiff.Tape, inFeatures, outFeatures int, rng *rand.Rand) *Layer {
	return nn.NewLayer(tape, inFeatures, outFeatures, rng)
}

// Network is a multi-layer perceptron.
type Network = nn.Network

// NewNetwork creates a network with one layer per entry of sizes.
//
// Example:
//
//	net := nn.NewNetwork(tape, 3, []int{3, 2, 1}, nn.NewRand(42)) // 23 parameters
func NewNetwork(tape *autodiff.Tape, inFeatures int, sizes []int, rng *rand.Rand) *Network {
	return nn.NewNetwork(tape, inFeatures, sizes, rng)
}

// Initialization

// NewRand creates a seeded source for parameter initialization.
func NewRand(seed uint64) *rand.Rand {
	return nn.NewRand(seed)
}

// Uniform draws a value from U[lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return nn.Uniform(rng, lo, hi)
}

// Helpers

// Inputs creates one leaf per value.
func Inputs(tape *autodiff.Tape, data ...float64) []autodiff.Value {
	return nn.Inputs(tape, data...)
}

// Data reads back the forward values of nodes.
func Data(tape *autodiff.Tape, values []autodiff.Value) []float64 {
	return nn.Data(tape, values)
}

// Values returns the leaf nodes of params.
func Values(params []*Parameter) []autodiff.Value {
	return nn.Values(params)
}

// ZeroGrad resets the gradient of every parameter.
func ZeroGrad(params []*Parameter) {
	nn.ZeroGrad(params)
}

// Sigmoid applies the logistic function to every node.
func Sigmoid(tape *autodiff.Tape, xs []autodiff.Value) []autodiff.Value {
	return nn.Sigmoid(tape, xs)
}
