// Package termstyle scopes terminal color state to a single write.
//
// A Session enables ANSI processing when it begins (needed on Windows
// consoles) and resets color and style attributes when it ends, so output
// written after the session is unaffected by escape sequences inside it.
//
//	session, err := termstyle.Begin(os.Stdout, true)
//	if err != nil {
//		return err
//	}
//	defer session.End()
//	fmt.Fprintln(session.Writer(), art)
package termstyle

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Session holds the terminal color state for one write.
type Session struct {
	out     *termenv.Output
	color   bool
	restore func() error
	ended   bool
}

// Begin starts a session on w. With color disabled nothing is written to the
// terminal on either end of the session.
func Begin(w io.Writer, color bool) (*Session, error) {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))

	session := &Session{out: out, color: color, restore: func() error { return nil }}
	if !color {
		return session, nil
	}

	restore, err := termenv.EnableVirtualTerminalProcessing(out)
	if err != nil {
		return nil, fmt.Errorf("enabling terminal color: %w", err)
	}
	session.restore = restore
	return session, nil
}

// Writer returns the writer output should go to while the session is open.
func (s *Session) Writer() io.Writer {
	return s.out
}

// Color reports whether the session was started with color enabled.
func (s *Session) Color() bool {
	return s.color
}

// End resets color state and restores the console mode. It is safe to call
// more than once; only the first call has an effect.
func (s *Session) End() error {
	if s.ended {
		return nil
	}
	s.ended = true
	if !s.color {
		return nil
	}
	s.out.Reset()
	if err := s.restore(); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}
