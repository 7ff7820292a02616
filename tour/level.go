package tour

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the enum.
var ErrUnknownLevel = errors.New("unknown level")

// Level is a closed enum. iota numbers the constants; the type keeps them
// from mixing with plain ints without a conversion.
type Level int

const (
	Low Level = iota
	Medium
	High
)

var levelNames = [...]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

// Levels returns every member in declaration order.
func Levels() []Level { return []Level{Low, Medium, High} }

// String prints the constant's name in upper case, so fmt.Println(High)
// shows HIGH. A Caser is not safe for concurrent use, hence one per call.
func (l Level) String() string {
	if l < Low || l > High {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return cases.Upper(language.Und).String(levelNames[l])
}

// ParseLevel accepts a member name in any case.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range Levels() {
		if strings.EqualFold(s, levelNames[l]) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (r *Runner) demoEnum() {
	r.println(r.state.Level)
}
