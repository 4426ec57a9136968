// Package clipboard places snippet text on the user's clipboard and reports
// the outcome to a notifier. Copies are attempted once and never retried.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable indicates no clipboard backend is usable on this system.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
	Name() string
}

// systemWriteAll and systemUnsupported are package-level to allow mocking in tests.
var (
	systemWriteAll    = clipboard.WriteAll
	systemUnsupported = func() bool { return clipboard.Unsupported }
)

// System uses the platform clipboard (pbcopy, xclip, xsel, wl-copy, Windows API).
type System struct{}

func (System) Name() string { return "system" }

func (System) Copy(text string) error {
	if systemUnsupported() {
		return fmt.Errorf("system: %w (no xclip, xsel or wl-copy found)", ErrUnavailable)
	}
	if err := systemWriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard with an OSC 52
// escape sequence. It works over SSH but cannot confirm the terminal honored
// the request.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool
}

// NewOSC52 returns an OSC52 copier writing to out, wrapping the sequence for
// tmux or screen when the environment says we are inside one.
func NewOSC52(out io.Writer) OSC52 {
	term := os.Getenv("TERM")
	return OSC52{
		Out:    out,
		Tmux:   os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"),
		Screen: os.Getenv("STY") != "" || strings.HasPrefix(term, "screen"),
	}
}

func (o OSC52) Name() string { return "osc52" }

func (o OSC52) Copy(text string) error {
	if o.Out == nil {
		return fmt.Errorf("osc52: %w (no terminal)", ErrUnavailable)
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// Fallback tries Primary and, if it fails, Secondary.
type Fallback struct {
	Primary   Copier
	Secondary Copier
}

func (f Fallback) Name() string { return f.Primary.Name() + "+" + f.Secondary.Name() }

func (f Fallback) Copy(text string) error {
	err := f.Primary.Copy(text)
	if err == nil {
		return nil
	}
	if err2 := f.Secondary.Copy(text); err2 != nil {
		return errors.Join(err, err2)
	}
	return nil
}

// New returns the copier for a config clipboard mode ("auto", "system",
// "osc52"). term receives OSC 52 sequences.
func New(mode string, term io.Writer) (Copier, error) {
	switch mode {
	case "", "auto":
		return Fallback{Primary: System{}, Secondary: NewOSC52(term)}, nil
	case "system":
		return System{}, nil
	case "osc52":
		return NewOSC52(term), nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// Available reports whether the system clipboard can be used.
func Available() bool {
	return !systemUnsupported()
}
