package autodiff

// Op identifies the operation that produced a node.
//
// The tag selects the backward rule; it carries no forward semantics.
type Op uint8

// Supported operations.
const (
	OpLeaf Op = iota
	OpAdd
	OpSub
	OpMul
	OpSigmoid
	OpLog
	OpPow
)

var opNames = [...]string{
	OpLeaf:    "leaf",
	OpAdd:     "add",
	OpSub:     "sub",
	OpMul:     "mul",
	OpSigmoid: "sigmoid",
	OpLog:     "log",
	OpPow:     "pow",
}

// String returns the lower-case op name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Arity returns the number of parents a node with this op has.
func (o Op) Arity() int {
	switch o {
	case OpAdd, OpSub, OpMul:
		return 2
	case OpSigmoid, OpLog, OpPow:
		return 1
	default:
		return 0
	}
}
