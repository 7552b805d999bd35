package cli

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

// minikubeContext is the kubeconfig context minikube writes for its cluster.
const minikubeContext = "minikube"

// ProbeResult is what the API server reports about a running cluster.
type ProbeResult struct {
	ServerVersion string `json:"serverVersion"`
	Nodes         int    `json:"nodes"`
	ReadyNodes    int    `json:"readyNodes"`
}

// KubeProbe asks the cluster's API server for its version and node readiness.
type KubeProbe struct {
	newClient func() (kubernetes.Interface, error)
}

// NewKubeProbe builds clients from the default kubeconfig loading rules with
// the minikube context selected.
func NewKubeProbe() *KubeProbe {
	return &KubeProbe{newClient: minikubeClientset}
}

// NewKubeProbeWithClient probes through client.
func NewKubeProbeWithClient(client kubernetes.Interface) *KubeProbe {
	return &KubeProbe{newClient: func() (kubernetes.Interface, error) { return client, nil }}
}

func minikubeClientset() (kubernetes.Interface, error) {
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{CurrentContext: minikubeContext},
	).ClientConfig()
	if err != nil {
		return nil, wrapWithSentinelAndContext(ErrLoadKubeconfigFailed, err,
			"failed to load kubeconfig", map[string]any{"context": minikubeContext})
	}
	client, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, wrapWithSentinel(ErrLoadKubeconfigFailed, err, "failed to create kubernetes client")
	}
	return client, nil
}

// Probe queries the server version and counts Ready nodes. ctx bounds the
// node listing; discovery uses the client's own timeout.
func (p *KubeProbe) Probe(ctx context.Context) (ProbeResult, error) {
	client, err := p.newClient()
	if err != nil {
		return ProbeResult{}, err
	}

	version, err := client.Discovery().ServerVersion()
	if err != nil {
		return ProbeResult{}, wrapWithSentinel(ErrAPIServerUnreachable, err, "API server unreachable")
	}

	nodes, err := client.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return ProbeResult{}, wrapWithSentinel(ErrListNodesFailed, err, "failed to list nodes")
	}

	res := ProbeResult{ServerVersion: version.GitVersion, Nodes: len(nodes.Items)}
	for i := range nodes.Items {
		if nodeReady(&nodes.Items[i]) {
			res.ReadyNodes++
		}
	}
	return res, nil
}

func nodeReady(node *corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}
