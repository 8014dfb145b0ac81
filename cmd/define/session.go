package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/heartmarshall/torque-dictionary/internal/view"
)

const helpText = `Type a word to look it up.
  :N    follow link N
  :say  pronounce the headword
  :q    quit`

// session connects a controller to a line-oriented terminal.
type session struct {
	ctrl  *view.Controller
	out   io.Writer
	links []view.Link
	last  view.State
}

func newSession(ctrl *view.Controller, out io.Writer) *session {
	return &session{ctrl: ctrl, out: out, last: view.StateReady}
}

// run loads the initial word, then executes input lines until ":q", EOF or
// ctx cancellation.
func (s *session) run(ctx context.Context, in io.Reader) error {
	unsubscribe := s.ctrl.Subscribe(s.observe)
	defer unsubscribe()

	s.ctrl.Sync(ctx)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		s.prompt()
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if s.exec(ctx, line) {
				return nil
			}
		}
	}
}

// exec runs one input line and reports whether the session should end.
func (s *session) exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
	case line == ":q" || line == ":quit":
		return true
	case line == ":help" || line == ":h":
		fmt.Fprintln(s.out, helpText)
	case line == ":say":
		err := s.ctrl.Pronounce()
		switch {
		case errors.Is(err, view.ErrNoSpeaker):
			fmt.Fprintln(s.out, "No speech command found (install espeak, say or spd-say).")
		case err != nil:
			fmt.Fprintf(s.out, "Could not speak: %v\n", err)
		}
	case strings.HasPrefix(line, ":"):
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 1 || n > len(s.links) {
			fmt.Fprintf(s.out, "Unknown command %q. Type :help for help.\n", line)
			return false
		}
		s.ctrl.Navigate(ctx, s.links[n-1].Word)
	default:
		s.ctrl.SetInput(line)
		s.ctrl.Submit(ctx)
	}
	return false
}

// observe redraws on LOADING and on the READY that ends a load; input-only
// changes are ignored.
func (s *session) observe(snap view.Snapshot) {
	defer func() { s.last = snap.State }()

	switch {
	case snap.State == view.StateLoading:
		fmt.Fprintln(s.out, view.LoadingText)
	case s.last == view.StateLoading:
		page := view.BuildPage(snap, s.ctrl.CanPronounce())
		s.links = page.Links()
		renderPage(s.out, page)
	}
}

func (s *session) prompt() {
	fmt.Fprint(s.out, "> ")
}
