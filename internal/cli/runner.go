package cli

import (
	"bytes"
	"context"
	"errors"

	"go.uber.org/zap"

	"minikube-ctl/internal/minikube"
)

// ExecRunner runs minikube through an Executor, capturing stdout and stderr.
// It implements minikube.CommandRunner.
type ExecRunner struct {
	exec       Executor
	validators []ExecValidator
	logger     *zap.Logger
}

// NewExecRunner creates an ExecRunner with default validators.
func NewExecRunner(exec Executor, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{
		exec:       exec,
		validators: []ExecValidator{NoControlChars()},
		logger:     logger,
	}
}

type exitCoder interface {
	ExitCode() int
}

// Run executes binary with args. A process that started and exited non-zero
// yields its exit code and a nil error.
func (r *ExecRunner) Run(ctx context.Context, binary string, args []string) (minikube.RunResult, error) {
	cmd, err := r.exec.Command(ctx, binary, args, r.validators...)
	if err != nil {
		return minikube.RunResult{ExitCode: -1}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	r.logger.Debug("exec", zap.String("binary", binary), zap.Strings("args", args))
	runErr := cmd.Run()
	res := minikube.RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if runErr == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, ctxErr
	}
	var coder exitCoder
	if errors.As(runErr, &coder) && coder.ExitCode() >= 0 {
		res.ExitCode = coder.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, runErr
}
