package cli

import (
	"os"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"minikube-ctl/internal/minikube"
)

// isTerminal is a test seam.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// SpinnerIndicator is a minikube.Indicator drawn as a pterm spinner on a
// terminal. Without a terminal each new text is printed as a step line.
type SpinnerIndicator struct {
	printer     *Printer
	interactive bool

	mu      sync.Mutex
	text    string
	printed string
	visible bool
	spinner *pterm.SpinnerPrinter
}

var _ minikube.Indicator = (*SpinnerIndicator)(nil)

// NewSpinnerIndicator draws on p. The spinner is only animated when p writes
// to a terminal.
func NewSpinnerIndicator(p *Printer) *SpinnerIndicator {
	interactive := false
	if f, ok := p.writer().(*os.File); ok {
		interactive = isTerminal(f)
	}
	return &SpinnerIndicator{printer: p, interactive: interactive}
}

func (s *SpinnerIndicator) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	if s.visible {
		s.render()
	}
}

func (s *SpinnerIndicator) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = true
	s.render()
}

func (s *SpinnerIndicator) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
	s.printed = ""
	if s.spinner != nil {
		_ = s.spinner.Stop()
		s.spinner = nil
	}
}

// Text returns the current text and whether the indicator is shown.
func (s *SpinnerIndicator) Text() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.visible
}

func (s *SpinnerIndicator) render() {
	if s.printer.Quiet {
		return
	}
	if !s.interactive {
		if s.text != s.printed {
			s.printer.Step(s.text)
			s.printed = s.text
		}
		return
	}
	if s.spinner != nil {
		s.spinner.UpdateText(s.text)
		return
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(s.printer.writer()).Start(s.text)
	if err != nil {
		s.interactive = false
		s.render()
		return
	}
	s.spinner = spinner
}
