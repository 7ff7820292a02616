package tour

import (
	"fmt"
	"io"
)

// Person is a small record with unexported fields behind accessors. Go has
// no constructors; New* functions fill that role by convention.
type Person struct {
	name string
	age  int
}

// NewPerson builds a Person from explicit values.
func NewPerson(name string, age int) *Person {
	return &Person{name: name, age: age}
}

// DefaultPerson delegates to NewPerson with placeholder values.
func DefaultPerson() *Person {
	return NewPerson("Default", 0)
}

func (p *Person) Name() string        { return p.name }
func (p *Person) SetName(name string) { p.name = name }
func (p *Person) Age() int            { return p.age }
func (p *Person) SetAge(age int)      { p.age = age }

func (p *Person) String() string {
	return fmt.Sprintf("%s (%d)", p.name, p.age)
}

// Greeter returns a closure bound to p. Go has no inner classes; a closure
// over the receiver gives the same access to the enclosing value.
func (p *Person) Greeter(w io.Writer) func() {
	return func() {
		fmt.Fprintln(w, "Hello from Inner Class")
	}
}

// Add is a plain function: no receiver, works only with its parameters.
func Add(a, b int) int {
	return a + b
}

func (r *Runner) demoFunctions() {
	r.state.Sum = Add(r.in.Operands[0], r.in.Operands[1])
}

func (r *Runner) demoStructs() {
	r.state.Person = NewPerson(r.in.Person.Name, r.in.Person.Age)
}
