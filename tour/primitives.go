package tour

import "sync/atomic"

// Pi is a typed package-level constant. Untyped constants (const x = 3.14)
// take the type their use site needs; this one is pinned to float64.
const Pi float64 = 3.14159

// runs counts Run calls across every Runner in the process, the Go stand-in
// for a static field.
var runs atomic.Int64

// Runs reports how many tours have been started in this process.
func Runs() int64 { return runs.Load() }

// Primitives holds one value of each built-in kind.
type Primitives struct {
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Char   rune
	Bool   bool
	Pi     float64

	Text  string
	Alias string // shares Text's bytes; strings are immutable
	Boxed any

	Numbers [5]int
	Words   [3]string // zero value: three empty strings
}

// demoPrimitives declares the built-in kinds. Nothing is printed: the point
// is the declarations and their zero values.
//
// Go has no implicit widening between numeric types, so mixing int8 and
// int64 in one expression needs an explicit conversion.
func (r *Runner) demoPrimitives() {
	var p Primitives

	p.Byte = 127
	p.Short = 32000
	p.Int = 100000
	p.Long = 10000000000
	p.Float = 3.14
	p.Double = 3.1415926535
	p.Char = 'A'
	p.Bool = true
	p.Pi = Pi

	p.Text = "Hello World"
	p.Alias = p.Text
	p.Boxed = 42 // stored in an interface: the closest thing to autoboxing

	copy(p.Numbers[:], r.in.Numbers)

	r.state.Primitives = p
}
