package tour

// ── if / else ────────────────────────────────────────────────────────────────

// demoIf prints which side of the threshold the value is on. Equal values
// take the else branch.
func (r *Runner) demoIf() {
	if r.in.Value > r.in.Threshold {
		r.printf("i is greater than %d\n", r.in.Threshold)
	} else {
		r.printf("i is %d or less\n", r.in.Threshold)
	}
}

// ── switch ───────────────────────────────────────────────────────────────────

// DayName maps a day selector to its name. Go's switch does not fall through
// unless asked to, so no break is needed between cases.
func DayName(day int) string {
	switch day {
	case 1:
		return "Monday"
	case 2:
		return "Tuesday"
	default:
		return "Other day"
	}
}

func (r *Runner) demoSwitch() {
	r.println(DayName(r.in.Day))
}

// ── loops ────────────────────────────────────────────────────────────────────
// Go has a single loop keyword. The three classic shapes are all `for`.

func (r *Runner) demoFor() {
	for x := 0; x < r.in.ForLimit; x++ {
		r.println("For loop:", x)
	}
}

// demoWhile is a for with only a condition.
func (r *Runner) demoWhile() {
	y := 0
	for y < r.in.WhileLimit {
		y++
	}
	r.state.WhileCount = y
}

// demoDoWhile runs the body once before testing the condition, which Go
// spells as an infinite for with the test at the bottom.
func (r *Runner) demoDoWhile() {
	z := 0
	for {
		z++
		if z >= r.in.DoWhileLimit {
			break
		}
	}
	r.state.DoWhileCount = z
}

// demoRange iterates a fixed-size array. range copies each element into n.
func (r *Runner) demoRange() {
	var numbers [5]int
	copy(numbers[:], r.in.Numbers)

	for _, n := range numbers {
		r.println(n)
	}
}
