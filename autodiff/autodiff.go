// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over scalars.
//
// Nodes live on a Tape and are addressed by Value handles. Each operation
// records its operands so that Backward can propagate gradients from any node
// back to every node it was computed from.
//
// Example:
//
//	import "github.com/born-ml/grad/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    a := tape.Leaf(5)
//	    b := tape.Leaf(10)
//	    e := tape.Log(tape.Pow(tape.Mul(a, b), 2))
//
//	    tape.Backward(e)
//	    fmt.Println(tape.Grad(a)) // 0.4
//	}
package autodiff

import "github.com/born-ml/grad/internal/autodiff"

// Tape owns the nodes of a computation graph.
type Tape = autodiff.Tape

// Value is a handle to a node on a Tape.
type Value = autodiff.Value

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operation tags.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpSub     = autodiff.OpSub
	OpMul     = autodiff.OpMul
	OpSigmoid = autodiff.OpSigmoid
	OpLog     = autodiff.OpLog
	OpPow     = autodiff.OpPow
)

// Log offsets applied by Tape.Log in the forward and backward pass.
const (
	LogForwardEpsilon  = autodiff.LogForwardEpsilon
	LogBackwardEpsilon = autodiff.LogBackwardEpsilon
)

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}
