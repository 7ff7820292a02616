package tour

// Square is an ordinary function; assigning it to a variable makes it a
// function value like any closure literal.
func Square(x int) int { return x * x }

// demoClosures runs a zero-argument closure, then hands a per-element
// callback to forEach.
func (r *Runner) demoClosures() {
	run := func() { r.println("Lambda running") }
	run()

	forEach(r.list(), func(element string) {
		r.println(element)
	})
}

// demoFuncValues applies a func(int) int held in a variable.
func (r *Runner) demoFuncValues() {
	var transform func(int) int = Square
	r.println(transform(r.in.Square))
}

func forEach[T any](items []T, fn func(T)) {
	for _, it := range items {
		fn(it)
	}
}
