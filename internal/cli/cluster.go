package cli

// This file implements the cluster lifecycle commands (start, stop, status,
// check) on top of the minikube adapter.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"minikube-ctl/internal/minikube"
	"minikube-ctl/pkg/errx"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	kubeconfigConfigured = "Configured"
)

// ClusterAdapter is the part of minikube.Adapter the commands drive.
type ClusterAdapter interface {
	CheckRunnable(ctx context.Context) (minikube.Diagnostic, error)
	Start(ctx context.Context, opts minikube.StartOptions) *minikube.Operation
	Stop(ctx context.Context) *minikube.Operation
	Status(ctx context.Context) (minikube.ClusterStatus, error)
	Close()
}

// Prober reports API server details for a running cluster.
type Prober interface {
	Probe(ctx context.Context) (ProbeResult, error)
}

// ClusterManager handles cluster operations with injected dependencies.
type ClusterManager struct {
	adapter  ClusterAdapter
	settings *Settings
	probe    Prober
	printer  *Printer
	logger   *zap.Logger
}

// NewClusterManager creates a ClusterManager with the given dependencies.
func NewClusterManager(adapter ClusterAdapter, settings *Settings, probe Prober, printer *Printer, logger *zap.Logger) *ClusterManager {
	if printer == nil {
		printer = DefaultPrinter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings == nil {
		settings = &Settings{ProbeTimeout: defaultProbeTimeout}
	}
	return &ClusterManager{
		adapter:  adapter,
		settings: settings,
		probe:    probe,
		printer:  printer,
		logger:   logger,
	}
}

// ManagerLoader builds a ClusterManager once flags have been parsed.
type ManagerLoader func() (*ClusterManager, error)

// DefaultManagerLoader loads settings from *configFile and wires the adapter
// to os/exec, PATH lookup, the default printer and a client-go probe.
func DefaultManagerLoader(configFile *string, logger *zap.Logger) ManagerLoader {
	return func() (*ClusterManager, error) {
		file := ""
		if configFile != nil {
			file = *configFile
		}
		settings, err := LoadSettings(file)
		if err != nil {
			logStructuredError(logger, err, "Failed to load settings")
			return nil, err
		}
		printer := DefaultPrinter
		adapter := minikube.New(minikube.Config{
			Runner:       NewExecRunner(execExecutor, logger),
			Locator:      NewPathLocator(printer, logger),
			Notifier:     printer,
			NewIndicator: func() minikube.Indicator { return NewSpinnerIndicator(printer) },
			BinaryPath:   settings.BinaryPath,
			Logger:       logger,
		})
		return NewClusterManager(adapter, settings, NewKubeProbe(), printer, logger), nil
	}
}

// withManager adapts a manager method to a cobra RunE, closing the adapter
// afterwards so no spinner outlives the command.
func withManager(load ManagerLoader, run func(ctx context.Context, m *ClusterManager, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		m, err := load()
		if err != nil {
			return err
		}
		defer m.adapter.Close()
		return run(cmd.Context(), m, cmd, args)
	}
}

// NewStartCmd builds the start command.
func NewStartCmd(load ManagerLoader) *cobra.Command {
	var vmDriver, flags string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the minikube cluster",
		Long:  "Start the minikube cluster unless it is already running",
		Args:  cobra.NoArgs,
		RunE: withManager(load, func(ctx context.Context, m *ClusterManager, cmd *cobra.Command, _ []string) error {
			opts := minikube.StartOptions{
				VMDriver:        m.settings.VMDriver,
				AdditionalFlags: m.settings.AdditionalFlags,
			}
			if cmd.Flags().Changed("vm-driver") {
				opts.VMDriver = vmDriver
			}
			if cmd.Flags().Changed("flags") {
				opts.AdditionalFlags = flags
			}
			return m.StartCluster(ctx, opts)
		}),
	}

	cmd.Flags().StringVar(&vmDriver, "vm-driver", "", "VM driver passed to minikube (defaults to minikube.vmDriver)")
	cmd.Flags().StringVar(&flags, "flags", "", "Additional flags placed before the start verb (defaults to minikube.additionalFlags)")

	return cmd
}

// NewStopCmd builds the stop command.
func NewStopCmd(load ManagerLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the minikube cluster",
		Long:  "Stop the minikube cluster unless it is already stopped",
		Args:  cobra.NoArgs,
		RunE: withManager(load, func(ctx context.Context, m *ClusterManager, _ *cobra.Command, _ []string) error {
			return m.StopCluster(ctx)
		}),
	}
}

// NewStatusCmd builds the status command.
func NewStatusCmd(load ManagerLoader) *cobra.Command {
	var output string
	var probe bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show minikube cluster status",
		Long:  "Show the host, cluster and kubeconfig state reported by minikube",
		Args:  cobra.NoArgs,
		RunE: withManager(load, func(ctx context.Context, m *ClusterManager, _ *cobra.Command, _ []string) error {
			return m.ShowStatus(ctx, output, probe)
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&probe, "probe", false, "Also query the API server for its version and node readiness")

	return cmd
}

// NewCheckCmd builds the check command.
func NewCheckCmd(load ManagerLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that minikube is installed and runnable",
		Args:  cobra.NoArgs,
		RunE: withManager(load, func(ctx context.Context, m *ClusterManager, _ *cobra.Command, _ []string) error {
			return m.CheckRunnable(ctx)
		}),
	}
}

// StartCluster starts the cluster and waits for minikube to finish.
func (m *ClusterManager) StartCluster(ctx context.Context, opts minikube.StartOptions) error {
	m.logger.Debug("Starting cluster", zap.String("vm_driver", opts.VMDriver), zap.String("flags", opts.AdditionalFlags))
	return m.await(ctx, "start", m.adapter.Start(ctx, opts))
}

// StopCluster stops the cluster and waits for minikube to finish.
func (m *ClusterManager) StopCluster(ctx context.Context) error {
	m.logger.Debug("Stopping cluster")
	return m.await(ctx, "stop", m.adapter.Stop(ctx))
}

func (m *ClusterManager) await(ctx context.Context, verb string, op *minikube.Operation) error {
	res, err := op.Wait(ctx)
	if err != nil {
		return err
	}
	m.logger.Debug("Cluster operation finished", zap.String("verb", verb), zap.Stringer("outcome", res.Outcome))
	if res.OK() {
		return nil
	}

	failure := res.Err
	if failure == nil {
		failure = newWithSentinel(ErrOperationFailed, res.Message)
	}
	logStructuredError(m.logger, failure, fmt.Sprintf("minikube %s failed", verb))
	return failure
}

type statusView struct {
	minikube.ClusterStatus
	Probe      *ProbeResult `json:"probe,omitempty"`
	ProbeError string       `json:"probeError,omitempty"`
}

// ShowStatus prints the cluster status in the given format. With probe set
// and a running, configured cluster the API server is queried as well; a
// failed probe is reported but does not fail the command.
func (m *ClusterManager) ShowStatus(ctx context.Context, format string, probe bool) error {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case outputTable, outputJSON, outputYAML:
	default:
		err := wrapWithSentinelAndContext(ErrUnknownOutputFormat, nil,
			fmt.Sprintf("unknown output format %q (want table, json or yaml)", format),
			map[string]any{"format": format})
		logStructuredError(m.logger, err, "Unknown output format")
		return err
	}

	status, err := m.adapter.Status(ctx)
	if err != nil {
		m.printer.Error(errx.UserString(err))
		logStructuredError(m.logger, err, "Failed to get cluster status")
		return err
	}

	view := statusView{ClusterStatus: status}
	if probe && m.probe != nil && status.Running && status.KubeconfigState == kubeconfigConfigured {
		probeCtx, cancel := context.WithTimeout(ctx, m.settings.ProbeTimeout)
		res, err := m.probe.Probe(probeCtx)
		cancel()
		if err != nil {
			view.ProbeError = errx.UserString(err)
			logStructuredError(m.logger, err, "API server probe failed")
		} else {
			view.Probe = &res
		}
	}

	return m.renderStatus(format, view)
}

func (m *ClusterManager) renderStatus(format string, view statusView) error {
	switch format {
	case outputJSON:
		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return wrapWithSentinel(ErrEncodeStatusFailed, err, "failed to encode status as json")
		}
		m.printer.Println(string(out))
	case outputYAML:
		out, err := yaml.Marshal(view)
		if err != nil {
			return wrapWithSentinel(ErrEncodeStatusFailed, err, "failed to encode status as yaml")
		}
		m.printer.Printf("%s", out)
	default:
		m.printer.TableBoxed(statusRows(view))
		if view.ProbeError != "" {
			m.printer.Warn("API server probe failed: " + view.ProbeError)
		}
	}
	return nil
}

func statusRows(view statusView) [][]string {
	running := Red("no")
	if view.Running {
		running = Green("yes")
	}
	rows := [][]string{
		{"Component", "State"},
		{"host", view.Host},
		{"cluster", view.ClusterState},
		{"kubeconfig", view.KubeconfigState},
		{"running", running},
	}
	if view.Probe != nil {
		rows = append(rows,
			[]string{"apiserver", view.Probe.ServerVersion},
			[]string{"nodes ready", fmt.Sprintf("%d/%d", view.Probe.ReadyNodes, view.Probe.Nodes)},
		)
	}
	return rows
}

// CheckRunnable reports whether minikube can be executed.
func (m *ClusterManager) CheckRunnable(ctx context.Context) error {
	diag, err := m.adapter.CheckRunnable(ctx)
	if err != nil {
		// the locator has already told the user about a missing binary
		if !errors.Is(err, minikube.ErrNotInstalled) {
			m.printer.Error(errx.UserString(err))
		}
		logStructuredError(m.logger, err, "minikube is not runnable")
		return err
	}
	m.printer.Success(fmt.Sprintf("%s is installed and runnable", diag.Binary))
	return nil
}
