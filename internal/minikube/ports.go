package minikube

import "context"

// RunResult is the captured outcome of one process execution.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner executes binary with args without a shell. A non-zero exit is
// reported through RunResult.ExitCode; the error is reserved for failures to
// execute at all (missing file, permission, cancelled context).
type CommandRunner interface {
	Run(ctx context.Context, binary string, args []string) (RunResult, error)
}

// BinaryLocator resolves a binary from an explicit path or, when path is
// empty, from PATH. When alert is set a miss is reported to the user.
type BinaryLocator interface {
	Locate(ctx context.Context, binary, path string, alert bool) PresenceState
}

// Notifier shows one-off messages to the user.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Indicator is a persistent, reusable progress element.
type Indicator interface {
	SetText(text string)
	Show()
	Hide()
}

type nopNotifier struct{}

func (nopNotifier) Info(string)  {}
func (nopNotifier) Warn(string)  {}
func (nopNotifier) Error(string) {}

type nopIndicator struct{}

func (nopIndicator) SetText(string) {}
func (nopIndicator) Show()          {}
func (nopIndicator) Hide()          {}
