// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multi-layer perceptrons built on
// scalar autodiff values.
//
// # Overview
//
// This package contains:
//   - Parameter: named trainable leaf
//   - Neuron: weighted sum of inputs plus bias, no activation
//   - Layer: neurons sharing one input vector
//   - Network: layers chained in sequence
//   - Initialization: NewRand, Uniform
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/grad/autodiff"
//	    "github.com/born-ml/grad/nn"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    net := nn.NewNetwork(tape, 3, []int{3, 2, 1}, nn.NewRand(42))
//	    mark := tape.Len()
//
//	    out := net.Forward(nn.Inputs(tape, 1, 1, 1))
//	    tape.Backward(out[0])
//	    for _, p := range net.Parameters() {
//	        fmt.Println(p)
//	    }
//
//	    net.ZeroGrad()
//	    tape.Truncate(mark)
//	}
//
// Parameters must be zeroed between backward passes that reuse them.
package nn
