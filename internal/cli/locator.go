package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"minikube-ctl/internal/minikube"
)

// Test seams.
var (
	lookPath = exec.LookPath
	statFile = os.Stat
)

const installDocsURL = "https://minikube.sigs.k8s.io/docs/start/"

// PathLocator finds a binary at a configured path or on PATH.
// It implements minikube.BinaryLocator.
type PathLocator struct {
	notifier minikube.Notifier
	logger   *zap.Logger
}

// NewPathLocator returns a PathLocator that reports misses through notifier.
func NewPathLocator(notifier minikube.Notifier, logger *zap.Logger) *PathLocator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PathLocator{notifier: notifier, logger: logger}
}

// Locate checks path when it is set and falls back to a PATH lookup otherwise.
// A configured path that does not point at an executable file is a miss; PATH
// is not consulted in that case.
func (l *PathLocator) Locate(_ context.Context, binary, path string, alert bool) minikube.PresenceState {
	if path != "" {
		if isExecutableFile(path) {
			return minikube.PresenceState{Found: true, Path: path}
		}
		l.logger.Debug("configured binary is not executable", zap.String("path", path))
		if alert {
			l.alert(fmt.Sprintf("Could not find %s binary at %s.", binary, path))
		}
		return minikube.PresenceState{}
	}

	resolved, err := lookPath(binary)
	if err != nil {
		l.logger.Debug("binary not on PATH", zap.String("binary", binary), zap.Error(err))
		if alert {
			l.alert(fmt.Sprintf("Could not find %s binary on PATH.", binary))
		}
		return minikube.PresenceState{}
	}
	return minikube.PresenceState{Found: true, Path: resolved}
}

func (l *PathLocator) alert(msg string) {
	if l.notifier == nil {
		return
	}
	l.notifier.Error(fmt.Sprintf("%s Install it from %s or point %s at an existing binary.",
		msg, installDocsURL, keyMinikubePath))
}

func isExecutableFile(path string) bool {
	info, err := statFile(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
