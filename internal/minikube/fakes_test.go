package minikube

import (
	"context"
	"strings"
	"sync"
)

type runCall struct {
	Binary string
	Args   []string
}

// fakeRunner answers by the first argument that is a minikube verb.
type fakeRunner struct {
	mu        sync.Mutex
	calls     []runCall
	responses map[string]RunResult
	errs      map[string]error
	// block, when set for a verb, holds that verb's Run until closed.
	block map[string]chan struct{}
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: make(map[string]RunResult),
		errs:      make(map[string]error),
		block:     make(map[string]chan struct{}),
	}
}

func (f *fakeRunner) Run(_ context.Context, binary string, args []string) (RunResult, error) {
	verb := verbOf(args)
	f.mu.Lock()
	f.calls = append(f.calls, runCall{Binary: binary, Args: append([]string(nil), args...)})
	res, err, gate := f.responses[verb], f.errs[verb], f.block[verb]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return res, err
}

func (f *fakeRunner) on(verb string, res RunResult) *fakeRunner {
	f.responses[verb] = res
	return f
}

func (f *fakeRunner) onStatus(host, cluster, kubeconfig string) *fakeRunner {
	return f.on("status", RunResult{Stdout: `["` + host + `","` + cluster + `","` + kubeconfig + `"]`})
}

func (f *fakeRunner) callsFor(verb string) []runCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []runCall
	for _, c := range f.calls {
		if verbOf(c.Args) == verb {
			out = append(out, c)
		}
	}
	return out
}

func verbOf(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

type fakeLocator struct {
	mu     sync.Mutex
	state  PresenceState
	calls  int
	alerts []bool
	paths  []string
}

func (f *fakeLocator) Locate(_ context.Context, _ string, path string, alert bool) PresenceState {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.alerts = append(f.alerts, alert)
	f.paths = append(f.paths, path)
	return f.state
}

type message struct {
	Level string
	Text  string
}

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []message
}

func (n *recordingNotifier) add(level, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, message{Level: level, Text: text})
}

func (n *recordingNotifier) Info(msg string)  { n.add("info", msg) }
func (n *recordingNotifier) Warn(msg string)  { n.add("warn", msg) }
func (n *recordingNotifier) Error(msg string) { n.add("error", msg) }

func (n *recordingNotifier) messages() []message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]message(nil), n.msgs...)
}

type recordingIndicator struct {
	mu      sync.Mutex
	text    string
	visible bool
	texts   []string
}

func (i *recordingIndicator) SetText(text string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.text = text
	i.texts = append(i.texts, text)
}

func (i *recordingIndicator) Show() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = true
}

func (i *recordingIndicator) Hide() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = false
}

func (i *recordingIndicator) state() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.text, i.visible
}

type harness struct {
	runner     *fakeRunner
	locator    *fakeLocator
	notifier   *recordingNotifier
	indicator  *recordingIndicator
	indicators int
	adapter    *Adapter
}

func newHarness() *harness {
	h := &harness{
		runner:    newFakeRunner(),
		locator:   &fakeLocator{state: PresenceState{Found: true, Path: "/usr/local/bin/minikube"}},
		notifier:  &recordingNotifier{},
		indicator: &recordingIndicator{},
	}
	h.adapter = New(Config{
		Runner:   h.runner,
		Locator:  h.locator,
		Notifier: h.notifier,
		NewIndicator: func() Indicator {
			h.indicators++
			return h.indicator
		},
		BinaryPath: "/usr/local/bin/minikube",
	})
	return h
}
