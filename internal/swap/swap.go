package swap

// Operands holds the three integers the demonstration works on
type Operands struct {
	A int `json:"a" yaml:"a" msgpack:"a"`
	B int `json:"b" yaml:"b" msgpack:"b"`
	C int `json:"c" yaml:"c" msgpack:"c"`
}

// DefaultOperands returns the literals the demonstration starts from
func DefaultOperands() Operands {
	return Operands{A: 4, B: 5, C: 6}
}

// Step records the operands around a single swap call
type Step struct {
	Call   string   `json:"call" yaml:"call" msgpack:"call"`
	Before Operands `json:"before" yaml:"before" msgpack:"before"`
	After  Operands `json:"after" yaml:"after" msgpack:"after"`
}

// Result contains the outcome of a demonstration run
type Result struct {
	Initial Operands `json:"initial" yaml:"initial" msgpack:"initial"`
	Final   Operands `json:"final" yaml:"final" msgpack:"final"`
	Steps   []Step   `json:"steps" yaml:"steps" msgpack:"steps"`
	// Value is c - a - b over the final operands
	Value int `json:"value" yaml:"value" msgpack:"value"`
}

// ByValue exchanges its own copies of a and b.
// The caller's variables are never touched.
func ByValue(a, b int) {
	c := a
	a = b
	b = c
}

// ByReference exchanges the integers stored at a and b.
// Passing the same address twice leaves the value unchanged.
func ByReference(a, b *int) {
	c := *a
	*a = *b
	*b = c
}

// Run swaps a and b by value, then b and c by reference, and combines the
// final operands as c - a - b.
func Run(ops Operands) *Result {
	result := &Result{Initial: ops}
	a, b, c := ops.A, ops.B, ops.C

	before := Operands{A: a, B: b, C: c}
	ByValue(a, b)
	result.Steps = append(result.Steps, Step{
		Call:   "by-value(a, b)",
		Before: before,
		After:  Operands{A: a, B: b, C: c},
	})

	before = Operands{A: a, B: b, C: c}
	ByReference(&b, &c)
	result.Steps = append(result.Steps, Step{
		Call:   "by-reference(&b, &c)",
		Before: before,
		After:  Operands{A: a, B: b, C: c},
	})

	result.Final = Operands{A: a, B: b, C: c}
	result.Value = c - a - b
	return result
}
