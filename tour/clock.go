package tour

import "time"

// Date truncates t to midnight in t's own location. time.Truncate(24h) would
// truncate in UTC, which is the wrong day for anyone east or west of it.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// demoClock reads the clock once and keeps both the date and the full
// timestamp. Neither is printed: they would make the transcript differ on
// every run.
func (r *Runner) demoClock() {
	now := r.now()
	r.state.Today = Date(now)
	r.state.Now = now
}
