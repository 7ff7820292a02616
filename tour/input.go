package tour

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNoInput means stdin was closed before a line could be read.
var ErrNoInput = errors.New("no input line available")

// demoInput blocks for one line. A final line without a newline still
// counts; an input that ends before any byte arrives is an error and stops
// the tour.
func (r *Runner) demoInput() error {
	line, err := r.stdin.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %w", ErrNoInput, err)
	default:
		return fmt.Errorf("read input: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	r.state.Input = norm.NFC.String(line)
	return nil
}
