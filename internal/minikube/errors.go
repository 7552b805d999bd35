package minikube

import (
	"errors"

	"minikube-ctl/pkg/errx"
)

var (
	ErrNotInstalled    = errx.NewSentinel("minikube not installed", errx.CodeBinary, errx.DescBinary)
	ErrNotRunnable     = errx.NewSentinel("minikube not runnable", errx.CodeBinary, errx.DescBinary)
	ErrCommandFailed   = errx.NewSentinel("minikube command failed", errx.CodeCommand, errx.DescCommand)
	ErrMalformedStatus = errx.NewSentinel("malformed minikube status", errx.CodeStatus, errx.DescStatus)
	ErrInvalidFlags    = errx.NewSentinel("invalid additional flags", errx.CodeCLI, errx.DescCLI)
)

const stderrKey = "stderr"

// Stderr returns the minikube stderr attached to err, if any.
func Stderr(err error) string {
	var e *errx.Error
	if !errors.As(err, &e) {
		return ""
	}
	s, _ := e.Context()[stderrKey].(string)
	return s
}

func notInstalledError(path string) error {
	ctx := map[string]any{"binary": BinaryName}
	if path != "" {
		ctx["configured_path"] = path
	}
	return errx.FromSentinelWithContext(ErrNotInstalled, nil, "minikube binary not found", ctx)
}
