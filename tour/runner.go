// Package tour walks through Go language features one small section at a
// time: types, control flow, collections, closures, panic recovery, enums and
// a fire-and-forget goroutine. Each section prints a few lines; the order of
// those lines is fixed and forms the tour's transcript.
package tour

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/background"
	"github.com/marcodamonte/langtour/config"
)

// ErrUnknownSection is returned by New when Options.Only names a section
// that does not exist.
var ErrUnknownSection = errors.New("unknown section")

// Submitter accepts detached work. *background.Executor satisfies it.
type Submitter interface {
	Submit(ctx context.Context, name string, task background.Task) error
}

// Options wires a Runner to its surroundings. Every field is optional.
type Options struct {
	Out    io.Writer // defaults to io.Discard
	In     io.Reader // defaults to an empty reader
	Logger *zap.Logger

	// Executor receives the fire-and-forget task. Without one the task is
	// started with a bare go statement.
	Executor Submitter

	// Now replaces time.Now in the clock section.
	Now func() time.Time

	// Only restricts the run to the named sections, still in tour order.
	Only []string

	// Banners prints a heading before each section.
	Banners bool
}

// Runner executes the tour. A Runner is meant for a single Run.
type Runner struct {
	in      config.Inputs
	out     *lockedWriter
	stdin   *bufio.Reader
	log     *zap.Logger
	exec    Submitter
	now     func() time.Time
	only    map[string]bool
	banners bool

	runID string
	state State
}

// New validates cfg and builds a Runner.
func New(cfg config.Config, opts Options) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := ParseLevel(cfg.Inputs.Level)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		in:      cfg.Inputs,
		out:     &lockedWriter{w: opts.Out},
		log:     opts.Logger,
		exec:    opts.Executor,
		now:     opts.Now,
		banners: opts.Banners,
	}
	r.state.Level = level

	if r.out.w == nil {
		r.out.w = io.Discard
	}
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	r.stdin = bufio.NewReader(in)
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.now == nil {
		r.now = time.Now
	}

	if len(opts.Only) > 0 {
		r.only = make(map[string]bool, len(opts.Only))
		for _, name := range opts.Only {
			name = strings.TrimSpace(name)
			if _, ok := lookupSection(name); !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
			}
			r.only[name] = true
		}
	}
	return r, nil
}

// Run executes the selected sections in tour order. The first section that
// fails stops the run; its error is returned wrapped with the section name.
func (r *Runner) Run(ctx context.Context) error {
	r.runID = uuid.Must(uuid.NewV7()).String()
	log := r.log.With(zap.String("run_id", r.runID))
	runs.Add(1)

	log.Debug("tour started", zap.Int("sections", len(sections)))
	for _, s := range sections {
		if r.only != nil && !r.only[s.name] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if r.banners {
			r.printf("\n━━━ %s ━━━\n", s.title)
		}

		start := time.Now()
		if err := s.run(r, ctx); err != nil {
			log.Debug("section failed", zap.String("section", s.name), zap.Error(err))
			return fmt.Errorf("%s: %w", s.name, err)
		}
		log.Debug("section done",
			zap.String("section", s.name),
			zap.Duration("took", time.Since(start)))
	}
	log.Debug("tour finished")
	return nil
}

// RunID identifies the last Run. Empty before Run is called.
func (r *Runner) RunID() string { return r.runID }

// State returns the values the sections produced but did not print.
func (r *Runner) State() State { return r.state }

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

func (r *Runner) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// lockedWriter serialises writes so the fire-and-forget goroutine never
// interleaves with the main flow inside a single line.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
