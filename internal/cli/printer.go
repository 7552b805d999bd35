package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Printer writes styled terminal output. A zero Printer writes to stdout.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

// DefaultPrinter is the process-wide printer used by commands.
var DefaultPrinter = &Printer{}

func (p *Printer) writer() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

func (p *Printer) write(s string) {
	_, _ = fmt.Fprint(p.writer(), s)
}

// Info prints an informational line. Suppressed in quiet mode.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	p.write(pterm.Info.Sprintln(msg))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	p.write(pterm.Warning.Sprintln(msg))
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	p.write(pterm.Error.Sprintln(msg))
}

// Success prints a success line.
func (p *Printer) Success(msg string) {
	p.write(pterm.Success.Sprintln(msg))
}

// Section prints a section heading. Suppressed in quiet mode.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	p.write(pterm.DefaultSection.Sprintln(title))
}

// Step prints an indented progress line. Suppressed in quiet mode.
func (p *Printer) Step(msg string) {
	if p.Quiet {
		return
	}
	p.write(fmt.Sprintf("  %s %s\n", Cyan("→"), msg))
}

func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...))
}

func (p *Printer) Println(args ...any) {
	p.write(fmt.Sprintln(args...))
}

// Table renders rows with the first row as header.
func (p *Printer) Table(data [][]string) {
	p.table(data, false)
}

// TableBoxed renders rows with the first row as header inside a box.
func (p *Printer) TableBoxed(data [][]string) {
	p.table(data, true)
}

func (p *Printer) table(data [][]string, boxed bool) {
	if len(data) == 0 {
		return
	}
	tp := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(data))
	if boxed {
		tp = tp.WithBoxed()
	}
	out, err := tp.Srender()
	if err != nil {
		return
	}
	p.write(out + "\n")
}

func Green(s string) string  { return pterm.Green(s) }
func Yellow(s string) string { return pterm.Yellow(s) }
func Red(s string) string    { return pterm.Red(s) }
func Cyan(s string) string   { return pterm.Cyan(s) }

