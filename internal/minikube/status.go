package minikube

import (
	"encoding/json"
	"fmt"
	"strings"

	"minikube-ctl/pkg/errx"
)

const statusFieldCount = 3

// ParseStatus decodes the output of `minikube status --format` as produced
// with statusFormat. Anything but a JSON array of exactly three strings is
// ErrMalformedStatus.
func ParseStatus(stdout string) (ClusterStatus, error) {
	var fields []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &fields); err != nil {
		return ClusterStatus{}, errx.FromSentinelWithContext(
			ErrMalformedStatus,
			err,
			fmt.Sprintf("cannot parse minikube status output: %v", err),
			map[string]any{"stdout": stdout},
		)
	}
	if len(fields) != statusFieldCount {
		return ClusterStatus{}, errx.FromSentinelWithContext(
			ErrMalformedStatus,
			nil,
			fmt.Sprintf("minikube status returned %d fields, want %d", len(fields), statusFieldCount),
			map[string]any{"stdout": stdout},
		)
	}
	return NewClusterStatus(fields[0], fields[1], fields[2]), nil
}
