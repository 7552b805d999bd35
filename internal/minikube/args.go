package minikube

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"minikube-ctl/pkg/errx"
)

// statusFormat makes `minikube status` print a JSON array of
// [overall, cluster, kubeconfig].
const statusFormat = `["{{.MinikubeStatus}}","{{.ClusterStatus}}","{{.KubeconfigStatus}}"]`

// Indicator texts.
const (
	IndicatorStarting = "minikube-starting"
	IndicatorRunning  = "minikube-running"
	IndicatorStopping = "minikube-stopping"
)

// User-facing messages.
const (
	MsgAlreadyRunning = "minikube already running"
	MsgAlreadyStopped = "minikube already stopped"
	MsgStarted        = "Cluster started."
	MsgStopped        = "Cluster stopped."
)

func helpArgs() []string { return []string{"help"} }

func stopArgs() []string { return []string{"stop"} }

func statusArgs() []string { return []string{"status", "--format", statusFormat} }

// StartArgs builds the argument list for `minikube start`: the additional
// flags split into words with shell quoting rules, then --vm-driver when a
// driver is set, then the start verb. Unbalanced quotes or a trailing escape
// yield ErrInvalidFlags.
func StartArgs(opts StartOptions) ([]string, error) {
	args, err := shellquote.Split(opts.AdditionalFlags)
	if err != nil {
		return nil, errx.FromSentinelWithContext(
			ErrInvalidFlags,
			err,
			fmt.Sprintf("cannot parse additional flags: %v", err),
			map[string]any{"flags": opts.AdditionalFlags},
		)
	}
	if driver := strings.TrimSpace(opts.VMDriver); driver != "" {
		args = append(args, "--vm-driver="+driver)
	}
	return append(args, "start"), nil
}
