package cli

// This file implements the "config" command for viewing and persisting
// minikube-ctl settings.

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewConfigCmd builds the config subcommand.
func NewConfigCmd(load ManagerLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage minikube-ctl settings",
		Long:  "View resolved settings or persist the minikube binary path",
	}

	cmd.AddCommand(newConfigViewCmd(load))
	cmd.AddCommand(newConfigSetPathCmd(load))

	return cmd
}

func newConfigViewCmd(load ManagerLoader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load()
			if err != nil {
				return err
			}
			return m.ViewConfig(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table or yaml")

	return cmd
}

func newConfigSetPathCmd(load ManagerLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "set-path <path>",
		Short: "Persist the minikube binary path",
		Long:  "Persist the minikube binary path. An empty string clears it so PATH is searched instead.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := load()
			if err != nil {
				return err
			}
			return m.SetBinaryPath(args[0])
		},
	}
}

// ViewConfig prints the resolved settings.
func (m *ClusterManager) ViewConfig(format string) error {
	s := m.settings
	switch format {
	case outputYAML:
		out, err := yaml.Marshal(map[string]string{
			"file":                     s.File,
			keyMinikubePath:            s.BinaryPath,
			keyMinikubeVMDriver:        s.VMDriver,
			keyMinikubeAdditionalFlags: s.AdditionalFlags,
			keyProbeTimeout:            s.ProbeTimeout.String(),
		})
		if err != nil {
			return wrapWithSentinel(ErrMarshalSettingsFailed, err, "failed to marshal settings")
		}
		m.printer.Printf("%s", out)
		return nil
	case outputTable, "":
	default:
		return wrapWithSentinelAndContext(ErrUnknownOutputFormat, nil,
			fmt.Sprintf("unknown output format %q (want table or yaml)", format),
			map[string]any{"format": format})
	}

	path := s.BinaryPath
	if path == "" {
		path = Yellow("(PATH lookup)")
	}
	m.printer.Section("Settings")
	m.printer.Table([][]string{
		{"Key", "Value"},
		{"file", s.File},
		{keyMinikubePath, path},
		{keyMinikubeVMDriver, s.VMDriver},
		{keyMinikubeAdditionalFlags, s.AdditionalFlags},
		{keyProbeTimeout, s.ProbeTimeout.String()},
	})
	return nil
}

// SetBinaryPath persists path as the minikube binary override.
func (m *ClusterManager) SetBinaryPath(path string) error {
	if err := NoControlChars()(ExecSpec{Name: keyMinikubePath, Args: []string{path}}); err != nil {
		logStructuredError(m.logger, err, "Invalid minikube path")
		return err
	}
	if path != "" && !isExecutableFile(path) {
		m.printer.Warn(fmt.Sprintf("%s is not an executable file; minikube-ctl will report minikube as not installed until it is", path))
	}
	if err := m.settings.SaveBinaryPath(path); err != nil {
		m.printer.Error("Failed to save settings")
		logStructuredError(m.logger, err, "Failed to save settings")
		return err
	}
	if path == "" {
		m.printer.Success("Cleared minikube.path; PATH will be searched")
		return nil
	}
	m.printer.Success(fmt.Sprintf("Saved minikube.path = %s", path))
	return nil
}
