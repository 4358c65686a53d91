package nn

import (
	"fmt"

	"github.com/born-ml/grad/internal/autodiff"
)

// Parameter represents a trainable leaf node: a weight or a bias.
//
// Example:
//
//	w := nn.NewParameter("weight", tape, 0.5)
//
//	// Use the leaf in expressions
//	y := tape.Mul(w.Value(), x)
//
//	// Read the gradient after tape.Backward
//	grad := w.Grad()
type Parameter struct {
	name  string
	value autodiff.Value
	tape  *autodiff.Tape
}

// NewParameter creates a leaf on tape holding data.
func NewParameter(name string, tape *autodiff.Tape, data float64) *Parameter {
	return &Parameter{
		name:  name,
		value: tape.Leaf(data),
		tape:  tape,
	}
}

// Name returns the parameter name (e.g., "layers.0.neurons.1.weight.2").
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the leaf node of the parameter.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.tape.Data(p.value)
}

// Grad returns the gradient accumulated by backward passes.
func (p *Parameter) Grad() float64 {
	return p.tape.Grad(p.value)
}

// ZeroGrad resets the gradient to 0.
func (p *Parameter) ZeroGrad() {
	p.tape.ZeroGrad(p.value)
}

// String renders the parameter as name: Value(data=…, grad=…, op=leaf).
func (p *Parameter) String() string {
	return fmt.Sprintf("%s: %s", p.name, p.tape.Format(p.value))
}

// prefix qualifies the name with the path of the owning module.
func (p *Parameter) prefix(path string) {
	p.name = path + "." + p.name
}

// ZeroGrad resets the gradient of every parameter in params.
func ZeroGrad(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// Values returns the leaf nodes of params in order.
func Values(params []*Parameter) []autodiff.Value {
	values := make([]autodiff.Value, len(params))
	for i, p := range params {
		values[i] = p.value
	}
	return values
}
