package tour_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/tour"
)

func TestAddAndSquare(t *testing.T) {
	assert.Equal(t, 7, tour.Add(3, 4))
	assert.Equal(t, -1, tour.Add(3, -4))
	assert.Equal(t, 25, tour.Square(5))
	assert.Equal(t, 0, tour.Square(0))
}

func TestDayName(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, "Monday"},
		{2, "Tuesday"},
		{0, "Other day"},
		{3, "Other day"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tour.DayName(tt.day), "day %d", tt.day)
	}
}

// ── Divide ───────────────────────────────────────────────────────────────────

func TestDivide(t *testing.T) {
	q, err := tour.Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, q)

	q, err = tour.Divide(10, 0)
	require.ErrorIs(t, err, tour.ErrDivisionByZero)
	assert.Zero(t, q)
}

// ── Level ────────────────────────────────────────────────────────────────────

func TestLevelString(t *testing.T) {
	assert.Equal(t, "LOW", tour.Low.String())
	assert.Equal(t, "MEDIUM", tour.Medium.String())
	assert.Equal(t, "HIGH", fmt.Sprint(tour.High))
	assert.Equal(t, "Level(9)", tour.Level(9).String())
	assert.Equal(t, []tour.Level{tour.Low, tour.Medium, tour.High}, tour.Levels())
}

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"high", "HIGH", " High "} {
		l, err := tour.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, tour.High, l)
	}

	_, err := tour.ParseLevel("extreme")
	require.ErrorIs(t, err, tour.ErrUnknownLevel)
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestSetIgnoresDuplicates(t *testing.T) {
	s := tour.NewSet(1, 2)
	s.Add(2)
	s.Add(1)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(3))

	s.Remove(1)
	assert.Equal(t, []int{2}, s.Slice())
}

// ── Person ───────────────────────────────────────────────────────────────────

func TestPerson(t *testing.T) {
	p := tour.NewPerson("Alice", 25)
	assert.Equal(t, "Alice", p.Name())
	assert.Equal(t, 25, p.Age())

	p.SetName("Bob")
	p.SetAge(26)
	assert.Equal(t, "Bob (26)", p.String())

	d := tour.DefaultPerson()
	assert.Equal(t, "Default", d.Name())
	assert.Zero(t, d.Age())

	var buf bytes.Buffer
	p.Greeter(&buf)()
	assert.Equal(t, "Hello from Inner Class\n", buf.String())
}

// ── Interfaces and generics ──────────────────────────────────────────────────

func TestAnimalAndVehicle(t *testing.T) {
	var buf bytes.Buffer

	var a tour.Animal = tour.Dog{}
	a.MakeSound(&buf)

	var v tour.Vehicle = tour.Car{}
	v.Drive(&buf)

	assert.Equal(t, "Woof\nCar driving\n", buf.String())
}

func TestBox(t *testing.T) {
	var b tour.Box[string]
	assert.Empty(t, b.Get())

	b.Set("gopher")
	assert.Equal(t, "gopher", b.Get())

	var n tour.Box[int]
	n.Set(42)
	assert.Equal(t, 42, n.Get())
}

// ── Date ─────────────────────────────────────────────────────────────────────

func TestDateKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 01:30 local is still the previous day in UTC.
	in := time.Date(2024, time.January, 2, 1, 30, 0, 0, loc)

	got := tour.Date(in)
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
