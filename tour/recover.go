package tour

import (
	"errors"
	"runtime"
	"strings"
)

// ErrDivisionByZero is what Divide reports instead of letting the runtime
// panic escape.
var ErrDivisionByZero = errors.New("division by zero")

// Divide returns a / b. Integer division by zero panics with a runtime.Error;
// Divide recovers that one panic and returns ErrDivisionByZero. Any other
// runtime panic (nil dereference, out-of-range index) is a programming error
// and is re-raised.
func Divide(a, b int) (q int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "divide by zero") {
			err = ErrDivisionByZero
			return
		}
		panic(r)
	}()
	return a / b, nil
}

// demoGuardedDivision is try/catch/finally in Go terms: the error check is
// the catch, and the deferred call is the finally. The defer is registered
// first so it runs after the handler, on success and on failure alike.
func (r *Runner) demoGuardedDivision() {
	defer r.println("Finally block executed")

	if _, err := Divide(r.in.Dividend, r.in.Divisor); errors.Is(err, ErrDivisionByZero) {
		r.println("Division by zero!")
	}
}
