package tour

import (
	"context"
	"time"
)

// State keeps what the sections compute but never print, so callers and
// tests can inspect it after Run.
type State struct {
	Primitives Primitives

	WhileCount   int
	DoWhileCount int

	Sum    int
	Person *Person

	List []string
	Set  *Set[int]
	Map  map[string]int

	Today time.Time
	Now   time.Time
	Input string

	Level Level
}

// Section describes one step of the tour.
type Section struct {
	Name  string
	Title string
}

type section struct {
	name  string
	title string
	run   func(r *Runner, ctx context.Context) error
}

// sections is the tour, in the order it is printed.
var sections = []section{
	{"primitives", "Primitive and reference types", quiet((*Runner).demoPrimitives)},
	{"if", "If / else", quiet((*Runner).demoIf)},
	{"switch", "Switch", quiet((*Runner).demoSwitch)},
	{"for", "Counted for loop", quiet((*Runner).demoFor)},
	{"while", "Condition-only for loop", quiet((*Runner).demoWhile)},
	{"do-while", "At-least-once loop", quiet((*Runner).demoDoWhile)},
	{"range", "Range over an array", quiet((*Runner).demoRange)},
	{"functions", "Functions", quiet((*Runner).demoFunctions)},
	{"structs", "Struct construction", quiet((*Runner).demoStructs)},
	{"collections", "Slices, sets and maps", quiet((*Runner).demoCollections)},
	{"closures", "Closures", quiet((*Runner).demoClosures)},
	{"func-values", "Function values", quiet((*Runner).demoFuncValues)},
	{"recover", "Panic, recover and defer", quiet((*Runner).demoGuardedDivision)},
	{"clock", "Date and time", quiet((*Runner).demoClock)},
	{"input", "Reading a line from stdin", func(r *Runner, _ context.Context) error { return r.demoInput() }},
	{"enum", "Enums with iota", quiet((*Runner).demoEnum)},
	{"goroutine", "Fire and forget", (*Runner).demoFireAndForget},
}

// quiet adapts a section that cannot fail.
func quiet(fn func(*Runner)) func(*Runner, context.Context) error {
	return func(r *Runner, _ context.Context) error {
		fn(r)
		return nil
	}
}

// Sections lists the tour's sections in run order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Name: s.name, Title: s.title}
	}
	return out
}

func lookupSection(name string) (section, bool) {
	for _, s := range sections {
		if s.name == name {
			return s, true
		}
	}
	return section{}, false
}
