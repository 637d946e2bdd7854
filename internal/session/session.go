// Package session drives a picker dialog from line-oriented terminal input.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/persiancal/jdp/internal/jcal"
	"github.com/persiancal/jdp/internal/logging"
	"github.com/persiancal/jdp/internal/picker"
	"github.com/persiancal/jdp/internal/ui"
)

// Renderer draws a view model.
type Renderer interface {
	Render(vm picker.ViewModel) string
}

// Options wires a session to its streams.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Picker   *picker.Picker
	Renderer Renderer
	Logger   *logging.Logger

	// Help is printed for "?". Empty falls back to a one-line summary.
	Help string
	// Prompt is written before each read. Empty disables it.
	Prompt string
}

// Outcome records how the dialog closed.
type Outcome int

const (
	Dismissed Outcome = iota
	Cancelled
	Confirmed
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "dismissed"
	}
}

// Result is what the dialog produced. Date is set only when confirmed.
type Result struct {
	Date      *jcal.Date
	Confirmed bool
	Outcome   Outcome
}

const shortHelp = "commands: n p y m <number> t ok q x ?"

// Run renders the dialog and applies one command per input line until the
// picker closes. End of input and ctx cancellation both dismiss.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Picker == nil {
		return Result{}, errors.New("session: picker is required")
	}
	if opts.Renderer == nil {
		return Result{}, errors.New("session: renderer is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	log = log.Named("session")

	// Stops the reader once the picker closes with input still buffered.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := &runner{opts: opts, log: log}
	lines, readErr := readLines(ctx, opts.In)

	s.draw()
	for s.opts.Picker.IsOpen() {
		s.prompt()
		select {
		case <-ctx.Done():
			s.apply(picker.Dismiss{})
			log.Debugw("context done", "error", ctx.Err())
			return s.result(), nil
		case line, ok := <-lines:
			if !ok {
				s.apply(picker.Dismiss{})
				if err := <-readErr; err != nil {
					return s.result(), fmt.Errorf("read input: %w", err)
				}
				return s.result(), nil
			}
			s.handle(line)
		}
	}
	return s.result(), nil
}

type runner struct {
	opts    Options
	log     *logging.Logger
	outcome Outcome
}

func (s *runner) handle(line string) {
	p := s.opts.Picker
	cmd, err := ParseCommand(line, p.State().View)
	if err != nil {
		s.log.Debugw("rejected input", "line", line)
		s.println(ui.Warningf("%v, type ? for help", err))
		return
	}

	switch {
	case cmd.Help:
		help := s.opts.Help
		if help == "" {
			help = shortHelp
		}
		s.println(help)
		return
	case cmd.Event == nil:
		s.draw()
		return
	}

	if !s.apply(cmd.Event) {
		s.println(ui.Hint(fmt.Sprintf("%s: not available", picker.EventName(cmd.Event))))
		return
	}
	if p.IsOpen() {
		s.draw()
	}
}

func (s *runner) apply(ev picker.Event) bool {
	p := s.opts.Picker
	accepted := p.Apply(ev)
	st := p.State()

	fields := []interface{}{
		"event", picker.EventName(ev),
		"accepted", accepted,
		"view", st.View.String(),
		"cursor", st.Cursor.String(),
		"open", st.Open,
	}
	if st.Selected != nil {
		fields = append(fields, "selected", st.Selected.String())
	}
	s.log.Debugw("transition", fields...)

	if accepted && !st.Open {
		switch ev.(type) {
		case picker.Confirm:
			s.outcome = Confirmed
		case picker.Cancel:
			s.outcome = Cancelled
		default:
			s.outcome = Dismissed
		}
	}
	return accepted
}

func (s *runner) result() Result {
	res := Result{Outcome: s.outcome}
	if s.outcome == Confirmed {
		if sel := s.opts.Picker.State().Selected; sel != nil {
			res.Date = sel
			res.Confirmed = true
		}
	}
	return res
}

func (s *runner) draw() {
	s.println(s.opts.Renderer.Render(s.opts.Picker.View()))
}

func (s *runner) prompt() {
	if s.opts.Prompt != "" {
		fmt.Fprint(s.opts.Out, s.opts.Prompt)
	}
}

func (s *runner) println(text string) {
	fmt.Fprintln(s.opts.Out, text)
}

// readLines scans r on its own goroutine until EOF or ctx is done. The
// error channel receives exactly one value before lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	if r == nil {
		close(lines)
		errc <- nil
		return lines, errc
	}

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
