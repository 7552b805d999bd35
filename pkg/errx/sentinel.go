package errx

import (
	"errors"
	"sync"
)

type sentinelSpec struct {
	code        string
	description string
}

var (
	sentinelMu    sync.RWMutex
	sentinelSpecs = make(map[error]sentinelSpec)
)

// NewSentinel creates a sentinel error and records its code and description
// in one step, so declaration and categorization cannot drift apart.
func NewSentinel(msg, code, description string) error {
	err := errors.New(msg)
	sentinelMu.Lock()
	sentinelSpecs[err] = sentinelSpec{code: code, description: description}
	sentinelMu.Unlock()
	return err
}

// LookupSentinel returns the code and description registered for sentinel.
// Unregistered errors map to the CLI category.
func LookupSentinel(sentinel error) (code, description string) {
	sentinelMu.RLock()
	spec, ok := sentinelSpecs[sentinel]
	sentinelMu.RUnlock()
	if !ok {
		return CodeCLI, DescCLI
	}
	return spec.code, spec.description
}

// FromSentinelWithContext is FromSentinel with LookupSentinel plus structured context.
func FromSentinelWithContext(sentinel, cause error, message string, context map[string]any) *Error {
	err := FromSentinel(sentinel, LookupSentinel, message, cause)
	if len(context) > 0 {
		return err.WithContextMap(context)
	}
	return err
}
