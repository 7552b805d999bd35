package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix           = "MINIKUBE_CTL"
	settingsDirName     = ".minikube-ctl"
	settingsFileName    = "settings.yaml"
	defaultProbeTimeout = 10 * time.Second

	keyMinikubePath            = "minikube.path"
	keyMinikubeVMDriver        = "minikube.vmDriver"
	keyMinikubeAdditionalFlags = "minikube.additionalFlags"
	keyProbeTimeout            = "probe.timeout"

	// on-disk location of keyMinikubePath
	settingsSection = "minikube"
	settingsPathKey = "path"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	// File is where settings are read from and written to.
	File            string
	BinaryPath      string
	VMDriver        string
	AdditionalFlags string
	ProbeTimeout    time.Duration
}

// Test seam.
var userHomeDir = os.UserHomeDir

// DefaultSettingsFile returns ~/.minikube-ctl/settings.yaml.
func DefaultSettingsFile() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", wrapWithSentinel(ErrGetHomeDirectoryFailed, err, "failed to get home directory")
	}
	return filepath.Join(home, settingsDirName, settingsFileName), nil
}

func newViper(file string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyMinikubePath, "")
	v.SetDefault(keyMinikubeVMDriver, "")
	v.SetDefault(keyMinikubeAdditionalFlags, "")
	v.SetDefault(keyProbeTimeout, defaultProbeTimeout)
	return v
}

// LoadSettings reads file, or the default settings file when file is empty.
// Environment variables prefixed MINIKUBE_CTL_ override file values. A missing
// file yields defaults.
func LoadSettings(file string) (*Settings, error) {
	if file == "" {
		var err error
		if file, err = DefaultSettingsFile(); err != nil {
			return nil, err
		}
	}

	v := newViper(file)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, wrapWithSentinelAndContext(ErrReadSettingsFailed, err,
				"failed to read settings", map[string]any{"file": file})
		}
	}

	timeout := v.GetDuration(keyProbeTimeout)
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Settings{
		File:            file,
		BinaryPath:      strings.TrimSpace(v.GetString(keyMinikubePath)),
		VMDriver:        strings.TrimSpace(v.GetString(keyMinikubeVMDriver)),
		AdditionalFlags: v.GetString(keyMinikubeAdditionalFlags),
		ProbeTimeout:    timeout,
	}, nil
}

// SaveBinaryPath writes path as minikube.path into s.File. Other keys in the
// file are kept. An empty path clears the override.
func (s *Settings) SaveBinaryPath(path string) error {
	doc := map[string]any{}
	data, err := os.ReadFile(s.File)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return wrapWithSentinelAndContext(ErrReadSettingsFailed, err,
				"failed to parse settings", map[string]any{"file": s.File})
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return wrapWithSentinelAndContext(ErrReadSettingsFailed, err,
			"failed to read settings", map[string]any{"file": s.File})
	}
	if doc == nil {
		doc = map[string]any{}
	}

	path = strings.TrimSpace(path)
	section, _ := doc[settingsSection].(map[string]any)
	if section == nil {
		section = map[string]any{}
	}
	if path == "" {
		delete(section, settingsPathKey)
	} else {
		section[settingsPathKey] = path
	}
	doc[settingsSection] = section

	out, err := yaml.Marshal(doc)
	if err != nil {
		return wrapWithSentinel(ErrMarshalSettingsFailed, err, "failed to marshal settings")
	}
	if err := os.MkdirAll(filepath.Dir(s.File), 0o750); err != nil {
		return wrapWithSentinelAndContext(ErrWriteSettingsFailed, err,
			"failed to create settings directory", map[string]any{"file": s.File})
	}
	if err := os.WriteFile(s.File, out, 0o600); err != nil {
		return wrapWithSentinelAndContext(ErrWriteSettingsFailed, err,
			"failed to write settings", map[string]any{"file": s.File})
	}
	s.BinaryPath = path
	return nil
}
