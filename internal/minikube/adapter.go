package minikube

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"minikube-ctl/pkg/errx"
)

// Config wires an Adapter to its collaborators. Runner and Locator are
// required; the rest fall back to no-ops.
type Config struct {
	Runner   CommandRunner
	Locator  BinaryLocator
	Notifier Notifier
	// NewIndicator is called at most once, on the first Start or Stop.
	NewIndicator func() Indicator
	// BinaryPath overrides PATH lookup when non-empty.
	BinaryPath string
	Logger     *zap.Logger
}

// Adapter starts, stops and inspects a minikube cluster via the minikube CLI.
type Adapter struct {
	runner       CommandRunner
	locator      BinaryLocator
	notifier     Notifier
	newIndicator func() Indicator
	binaryPath   string
	logger       *zap.Logger

	mu        sync.Mutex
	presence  PresenceState
	indicator Indicator
}

// New returns an Adapter for cfg.
func New(cfg Config) *Adapter {
	a := &Adapter{
		runner:       cfg.Runner,
		locator:      cfg.Locator,
		notifier:     cfg.Notifier,
		newIndicator: cfg.NewIndicator,
		binaryPath:   cfg.BinaryPath,
		logger:       cfg.Logger,
	}
	if a.notifier == nil {
		a.notifier = nopNotifier{}
	}
	if a.newIndicator == nil {
		a.newIndicator = func() Indicator { return nopIndicator{} }
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// CheckPresent reports whether the minikube binary is available. A positive
// answer is cached for the life of the Adapter; a negative one is re-checked
// on every call. With alertOnFailure the locator tells the user about a miss.
func (a *Adapter) CheckPresent(ctx context.Context, alertOnFailure bool) bool {
	a.mu.Lock()
	found := a.presence.Found
	a.mu.Unlock()
	if found {
		return true
	}

	state := a.locator.Locate(ctx, BinaryName, a.binaryPath, alertOnFailure)
	if !state.Found {
		a.logger.Debug("minikube binary not found", zap.String("configured_path", a.binaryPath))
		return false
	}

	a.mu.Lock()
	a.presence = state
	a.mu.Unlock()
	a.logger.Debug("minikube binary found", zap.String("path", state.Path))
	return true
}

// CheckRunnable verifies that the binary is present and that `minikube help`
// exits 0. A non-zero exit returns the Diagnostic together with ErrNotRunnable.
func (a *Adapter) CheckRunnable(ctx context.Context) (Diagnostic, error) {
	if !a.CheckPresent(ctx, true) {
		return Diagnostic{}, notInstalledError(a.binaryPath)
	}

	bin := a.binary()
	res, err := a.runner.Run(ctx, bin, helpArgs())
	diag := Diagnostic{Binary: bin, ExitCode: res.ExitCode}
	if err != nil {
		return diag, errx.FromSentinelWithContext(
			ErrNotRunnable,
			err,
			fmt.Sprintf("cannot run %s: %v", bin, err),
			map[string]any{"binary": bin},
		)
	}
	if res.ExitCode != 0 {
		return diag, errx.FromSentinelWithContext(
			ErrNotRunnable,
			nil,
			fmt.Sprintf("%s help exited with code %d", bin, res.ExitCode),
			map[string]any{"binary": bin, "exit_code": res.ExitCode, stderrKey: res.Stderr},
		)
	}
	return diag, nil
}

// Status queries minikube for the cluster state. It never alerts the user;
// every failure is returned to the caller.
func (a *Adapter) Status(ctx context.Context) (ClusterStatus, error) {
	if !a.CheckPresent(ctx, false) {
		return ClusterStatus{}, notInstalledError(a.binaryPath)
	}

	bin := a.binary()
	args := statusArgs()
	res, err := a.runner.Run(ctx, bin, args)
	if err != nil {
		return ClusterStatus{}, errx.FromSentinelWithContext(
			ErrCommandFailed,
			err,
			fmt.Sprintf("minikube status failed: %v", err),
			map[string]any{"binary": bin, "args": strings.Join(args, " ")},
		)
	}
	// minikube exits non-zero when the cluster is stopped, so only stderr
	// signals failure here.
	if res.Stderr != "" {
		return ClusterStatus{}, errx.FromSentinelWithContext(
			ErrCommandFailed,
			nil,
			fmt.Sprintf("minikube status returned error: %s", res.Stderr),
			map[string]any{"binary": bin, "exit_code": res.ExitCode, stderrKey: res.Stderr},
		)
	}

	status, err := ParseStatus(res.Stdout)
	if err != nil {
		return ClusterStatus{}, err
	}
	a.logger.Debug("minikube status",
		zap.String("host", status.Host),
		zap.String("cluster", status.ClusterState),
		zap.String("kubeconfig", status.KubeconfigState),
	)
	return status, nil
}

// Start brings the cluster up unless it is already running. The returned
// Operation resolves immediately when a pre-check ends the call, otherwise
// when `minikube start` exits.
func (a *Adapter) Start(ctx context.Context, opts StartOptions) *Operation {
	args, argsErr := StartArgs(opts)
	return a.transition(ctx, transition{
		verb:          "start",
		args:          args,
		argsErr:       argsErr,
		busyText:      IndicatorStarting,
		skip:          func(s ClusterStatus) bool { return s.Running },
		skipMessage:   MsgAlreadyRunning,
		doneMessage:   MsgStarted,
		failurePrefix: "Failed to start cluster",
		onSuccess:     func() { a.showIndicator(IndicatorRunning) },
	})
}

// Stop halts the cluster unless it is already stopped.
func (a *Adapter) Stop(ctx context.Context) *Operation {
	return a.transition(ctx, transition{
		verb:          "stop",
		args:          stopArgs(),
		busyText:      IndicatorStopping,
		skip:          func(s ClusterStatus) bool { return !s.Running },
		skipMessage:   MsgAlreadyStopped,
		doneMessage:   MsgStopped,
		failurePrefix: "Failed to stop cluster",
		onSuccess:     a.hideIndicator,
	})
}

// Close hides the indicator if one was ever created.
func (a *Adapter) Close() {
	a.hideIndicator()
}

type transition struct {
	verb          string
	args          []string
	argsErr       error
	busyText      string
	skip          func(ClusterStatus) bool
	skipMessage   string
	doneMessage   string
	failurePrefix string
	onSuccess     func()
}

func (a *Adapter) transition(ctx context.Context, t transition) *Operation {
	if !a.CheckPresent(ctx, true) {
		return completedOperation(Result{Outcome: OutcomeAborted, Err: notInstalledError(a.binaryPath)})
	}

	if t.argsErr != nil {
		msg := fmt.Sprintf("%s: %s", t.failurePrefix, errx.UserString(t.argsErr))
		a.notifier.Error(msg)
		return completedOperation(Result{Outcome: OutcomeFailed, Message: msg, Err: t.argsErr})
	}

	a.showIndicator(t.busyText)

	status, err := a.Status(ctx)
	if err != nil {
		msg := fmt.Sprintf("%s: %s", t.failurePrefix, errx.UserString(err))
		a.notifier.Error(msg)
		a.hideIndicator()
		return completedOperation(Result{Outcome: OutcomeFailed, Message: msg, Stderr: Stderr(err), Err: err})
	}
	if t.skip(status) {
		// The indicator keeps its busy text; only a real invocation settles it.
		a.notifier.Warn(t.skipMessage)
		return completedOperation(Result{Outcome: OutcomeSkipped, Message: t.skipMessage})
	}

	bin := a.binary()
	op := newOperation()
	a.logger.Info("Running minikube", zap.String("binary", bin), zap.Strings("args", t.args))
	go func() {
		op.resolve(a.invoke(ctx, bin, t))
	}()
	return op
}

func (a *Adapter) invoke(ctx context.Context, bin string, t transition) Result {
	res, err := a.runner.Run(ctx, bin, t.args)
	if err == nil && res.ExitCode == 0 {
		a.notifier.Info(t.doneMessage)
		t.onSuccess()
		a.logger.Info("minikube finished", zap.String("verb", t.verb))
		return Result{Outcome: OutcomeSucceeded, Message: t.doneMessage}
	}

	detail := strings.TrimSpace(res.Stderr)
	if detail == "" && err != nil {
		detail = err.Error()
	}
	if detail == "" {
		detail = fmt.Sprintf("exit code %d", res.ExitCode)
	}
	msg := fmt.Sprintf("%s: %s", t.failurePrefix, detail)
	a.notifier.Error(msg)
	a.hideIndicator()

	failure := errx.FromSentinelWithContext(
		ErrCommandFailed,
		err,
		fmt.Sprintf("minikube %s failed: %s", t.verb, detail),
		map[string]any{
			"binary":    bin,
			"args":      strings.Join(t.args, " "),
			"exit_code": res.ExitCode,
			stderrKey:   res.Stderr,
		},
	)
	a.logger.Debug("minikube failed", zap.String("verb", t.verb), zap.Int("exit_code", res.ExitCode), zap.Error(err))
	return Result{Outcome: OutcomeFailed, Message: msg, Stderr: res.Stderr, Err: failure}
}

// binary is the resolved path, falling back to the bare name for PATH lookup.
func (a *Adapter) binary() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.presence.Path != "" {
		return a.presence.Path
	}
	return BinaryName
}

// showIndicator sets text on the shared indicator, creating it on first use.
func (a *Adapter) showIndicator(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.indicator == nil {
		a.indicator = a.newIndicator()
	}
	a.indicator.SetText(text)
	a.indicator.Show()
}

func (a *Adapter) hideIndicator() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.indicator != nil {
		a.indicator.Hide()
	}
}
