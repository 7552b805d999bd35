package cli

import (
	"context"
	"io"
	"os/exec"
	"strings"
)

// execCommandContext is a test seam for stubbing command creation in tests.
var execCommandContext = exec.CommandContext

// Command represents a command that can be executed.
type Command interface {
	Run() error
	SetStdout(w io.Writer)
	SetStderr(w io.Writer)
}

// Executor creates commands for execution. Commands are killed when ctx ends.
type Executor interface {
	Command(ctx context.Context, name string, args []string, validators ...ExecValidator) (Command, error)
}

type execCmd struct {
	cmd *exec.Cmd
}

func (c *execCmd) Run() error            { return c.cmd.Run() }
func (c *execCmd) SetStdout(w io.Writer) { c.cmd.Stdout = w }
func (c *execCmd) SetStderr(w io.Writer) { c.cmd.Stderr = w }

// osExecutor is the production implementation using os/exec.
type osExecutor struct{}

func (osExecutor) Command(ctx context.Context, name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: args}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}
	return &execCmd{cmd: execCommandContext(ctx, name, args...)}, nil
}

var execExecutor Executor = osExecutor{}

// NewOSExecutor returns the os/exec backed Executor.
func NewOSExecutor() Executor {
	return execExecutor
}

type ExecSpec struct {
	Name string
	Args []string
}

type ExecValidator func(ExecSpec) error

// NoControlChars rejects arguments carrying line breaks or tabs, which
// minikube would otherwise pass through into generated config.
func NoControlChars() ExecValidator {
	return func(spec ExecSpec) error {
		for _, arg := range spec.Args {
			if strings.ContainsAny(arg, "\r\n\t") {
				return wrapWithSentinelAndContext(ErrControlCharsNotAllowed, nil,
					"exec: control characters not allowed",
					map[string]any{"binary": spec.Name, "arg": arg})
			}
		}
		return nil
	}
}
