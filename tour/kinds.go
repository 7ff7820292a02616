package tour

import (
	"fmt"
	"io"
)

// ── Interfaces instead of class hierarchies ──────────────────────────────────
// A type satisfies an interface by having its methods; there is no
// "implements" clause and no inheritance. Abstract base classes become plain
// interfaces too.

// Animal is anything that can make a sound.
type Animal interface {
	MakeSound(w io.Writer)
}

// Vehicle is anything that can be driven.
type Vehicle interface {
	Drive(w io.Writer)
}

// Dog barks.
type Dog struct{}

func (Dog) MakeSound(w io.Writer) { fmt.Fprintln(w, "Woof") }

// Car drives.
type Car struct{}

func (Car) Drive(w io.Writer) { fmt.Fprintln(w, "Car driving") }

// Compile-time proof that the concrete types satisfy their interfaces.
var (
	_ Animal  = Dog{}
	_ Vehicle = Car{}
)

// ── Box[T] ───────────────────────────────────────────────────────────────────
// A one-slot generic container. The zero value holds T's zero value.

// Box holds a single value of type T.
type Box[T any] struct {
	value T
}

func (b *Box[T]) Set(v T) { b.value = v }
func (b *Box[T]) Get() T  { return b.value }
