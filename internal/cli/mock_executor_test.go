package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MockExecutor records every command it is asked to build.
type MockExecutor struct {
	mu sync.Mutex

	// CommandFunc, when set, decides how each command behaves.
	CommandFunc func(spec ExecSpec) *MockCommand

	DefaultStdout string
	DefaultStderr string
	DefaultRunErr error

	Commands []ExecSpec
}

func (m *MockExecutor) Command(_ context.Context, name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: append([]string(nil), args...)}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	m.Commands = append(m.Commands, spec)
	m.mu.Unlock()

	if m.CommandFunc != nil {
		if cmd := m.CommandFunc(spec); cmd != nil {
			return cmd, nil
		}
	}
	return &MockCommand{Stdout: m.DefaultStdout, Stderr: m.DefaultStderr, RunErr: m.DefaultRunErr}, nil
}

// HasCommand reports whether a command named name was built.
func (m *MockExecutor) HasCommand(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.Commands {
		if c.Name == name {
			return true
		}
	}
	return false
}

// LastCommand returns the most recently built command.
func (m *MockExecutor) LastCommand() ExecSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return ExecSpec{}
	}
	return m.Commands[len(m.Commands)-1]
}

// CommandsFor returns the recorded commands whose minikube verb is verb.
func (m *MockExecutor) CommandsFor(verb string) []ExecSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []ExecSpec
	for _, c := range m.Commands {
		if minikubeVerb(c.Args) == verb {
			out = append(out, c)
		}
	}
	return out
}

// MockCommand writes canned output and returns RunErr.
type MockCommand struct {
	Stdout  string
	Stderr  string
	RunErr  error
	RunFunc func() error

	StdoutW io.Writer
	StderrW io.Writer
}

func (c *MockCommand) Run() error {
	if c.StdoutW != nil && c.Stdout != "" {
		_, _ = io.WriteString(c.StdoutW, c.Stdout)
	}
	if c.StderrW != nil && c.Stderr != "" {
		_, _ = io.WriteString(c.StderrW, c.Stderr)
	}
	if c.RunFunc != nil {
		return c.RunFunc()
	}
	return c.RunErr
}

func (c *MockCommand) SetStdout(w io.Writer) { c.StdoutW = w }
func (c *MockCommand) SetStderr(w io.Writer) { c.StderrW = w }

// exitError mimics *exec.ExitError.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }

func minikubeVerb(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

// minikubeResponder answers by verb; unlisted verbs succeed silently.
func minikubeResponder(byVerb map[string]*MockCommand) func(ExecSpec) *MockCommand {
	return func(spec ExecSpec) *MockCommand {
		if cmd, ok := byVerb[minikubeVerb(spec.Args)]; ok {
			// fresh copy so repeated calls do not share writers
			c := *cmd
			return &c
		}
		return &MockCommand{}
	}
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
