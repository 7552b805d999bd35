package cli

// This file defines error handling utilities for the CLI:
//   - sentinel errors registered with an errx code
//   - wrapping helpers that attach the sentinel's category
//   - structured error logging gated by debug mode

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"minikube-ctl/pkg/errx"
)

var (
	debugMode   bool
	debugModeMu sync.RWMutex
)

// SetDebugMode sets the global debug mode flag.
// When enabled, logStructuredError writes structured error logs to the terminal.
func SetDebugMode(enabled bool) {
	debugModeMu.Lock()
	defer debugModeMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	debugModeMu.RLock()
	defer debugModeMu.RUnlock()
	return debugMode
}

// newWithSentinel creates an error in the category registered for base.
func newWithSentinel(base error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, nil)
	}
	return errx.FromSentinel(base, errx.LookupSentinel, msg, nil)
}

// wrapWithSentinel wraps cause in the category registered for base.
func wrapWithSentinel(base, cause error, msg string) error {
	if base == nil {
		return errx.CreateByCode(errx.CodeCLI, errx.DescCLI, msg, cause)
	}
	return errx.FromSentinel(base, errx.LookupSentinel, msg, cause)
}

// wrapWithSentinelAndContext is wrapWithSentinel plus structured context such
// as file paths or output formats.
func wrapWithSentinelAndContext(base, cause error, msg string, context map[string]any) error {
	err := wrapWithSentinel(base, cause, msg)
	if errxErr, ok := err.(*errx.Error); ok && len(context) > 0 {
		return errxErr.WithContextMap(context)
	}
	return err
}

var (
	// CLI errors.
	ErrUnknownOutputFormat    = errx.NewSentinel("unknown output format", errx.CodeCLI, errx.DescCLI)
	ErrControlCharsNotAllowed = errx.NewSentinel("value must not contain control characters", errx.CodeCLI, errx.DescCLI)
	ErrGetHomeDirectoryFailed = errx.NewSentinel("failed to get home directory", errx.CodeCLI, errx.DescCLI)
	ErrEncodeStatusFailed     = errx.NewSentinel("failed to encode status", errx.CodeCLI, errx.DescCLI)
	ErrOperationFailed        = errx.NewSentinel("cluster operation failed", errx.CodeCLI, errx.DescCLI)

	// Config errors.
	ErrReadSettingsFailed    = errx.NewSentinel("failed to read settings", errx.CodeConfig, errx.DescConfig)
	ErrWriteSettingsFailed   = errx.NewSentinel("failed to write settings", errx.CodeConfig, errx.DescConfig)
	ErrMarshalSettingsFailed = errx.NewSentinel("failed to marshal settings", errx.CodeConfig, errx.DescConfig)

	// Kubernetes API errors.
	ErrLoadKubeconfigFailed = errx.NewSentinel("failed to load kubeconfig", errx.CodeKube, errx.DescKube)
	ErrAPIServerUnreachable = errx.NewSentinel("API server unreachable", errx.CodeKube, errx.DescKube)
	ErrListNodesFailed      = errx.NewSentinel("failed to list nodes", errx.CodeKube, errx.DescKube)
)

// logStructuredError logs err with its errx code, category, message, context
// and cause as separate fields. Only logs in debug mode.
func logStructuredError(logger *zap.Logger, err error, msg string) {
	if logger == nil || err == nil || !IsDebugMode() {
		return
	}

	var errxErr *errx.Error
	if errors.As(err, &errxErr) {
		fields := []zap.Field{
			zap.String("error.code", errxErr.Code()),
			zap.String("error.category", errxErr.Description()),
			zap.String("error.message", errxErr.Message()),
			zap.Error(err),
		}
		for key, value := range errxErr.Context() {
			fields = append(fields, zap.Any("error.context."+key, value))
		}
		// distinct name; "error" is already taken
		if cause := errxErr.Cause(); cause != nil {
			fields = append(fields, zap.NamedError("error.cause", cause))
		}
		logger.Error(msg, fields...)
		return
	}
	logger.Error(msg, zap.Error(err))
}
