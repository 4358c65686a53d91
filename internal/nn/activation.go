package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/autodiff"
)

// Activation names accepted by Activate.
const (
	ActivationNone    = "none"
	ActivationSigmoid = "sigmoid"
)

// Sigmoid applies the logistic function to every node of xs.
func Sigmoid(tape *autodiff.Tape, xs []autodiff.Value) []autodiff.Value {
	out := make([]autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = tape.Sigmoid(x)
	}
	return out
}

// Activate applies the named activation to xs.
//
// Returns an error for unknown names.
func Activate(tape *autodiff.Tape, name string, xs []autodiff.Value) ([]autodiff.Value, error) {
	switch name {
	case ActivationNone, "":
		return xs, nil
	case ActivationSigmoid:
		return Sigmoid(tape, xs), nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}
