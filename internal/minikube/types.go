package minikube

// BinaryName is the executable the adapter looks for.
const BinaryName = "minikube"

// stoppedState is the only overall status minikube reports for a halted cluster.
const stoppedState = "Stopped"

// ClusterStatus is a snapshot of `minikube status`.
type ClusterStatus struct {
	// Host is the overall status string as reported by minikube.
	Host            string `json:"host"`
	Running         bool   `json:"running"`
	ClusterState    string `json:"cluster"`
	KubeconfigState string `json:"kubectl"`
}

// NewClusterStatus derives a ClusterStatus from the three strings minikube reports.
// Anything other than "Stopped" counts as running.
func NewClusterStatus(host, cluster, kubeconfig string) ClusterStatus {
	return ClusterStatus{
		Host:            host,
		Running:         host != stoppedState,
		ClusterState:    cluster,
		KubeconfigState: kubeconfig,
	}
}

// StartOptions tunes a single Start call. Empty fields are omitted.
type StartOptions struct {
	VMDriver        string
	AdditionalFlags string
}

// PresenceState records whether the binary was found and where.
type PresenceState struct {
	Found bool
	Path  string
}

// Diagnostic is the outcome of CheckRunnable.
type Diagnostic struct {
	Binary   string
	ExitCode int
}

// Outcome classifies how a Start or Stop ended.
type Outcome int

const (
	// OutcomeSucceeded means minikube ran and exited 0.
	OutcomeSucceeded Outcome = iota
	// OutcomeSkipped means the cluster was already in the requested state.
	OutcomeSkipped
	// OutcomeAborted means the binary could not be found.
	OutcomeAborted
	// OutcomeFailed means the status precheck or the minikube invocation failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeAborted:
		return "aborted"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Result is what an Operation resolves to.
type Result struct {
	Outcome Outcome
	// Message is the text shown to the user for this outcome.
	Message string
	// Stderr holds captured minikube stderr on failure.
	Stderr string
	Err    error
}

// OK reports whether the caller should treat the operation as successful.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSucceeded || r.Outcome == OutcomeSkipped
}
