// Package config provides hierarchical configuration management for
// changelogger using koanf. Configuration is loaded with priority:
// environment variables > project config (.changelogger.yml) > user config
// (~/.config/changelogger/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// envPrefix is the environment variable namespace, e.g. CHANGELOGGER_OUTPUT.
const envPrefix = "CHANGELOGGER_"

// Configuration represents the changelogger CLI configuration.
type Configuration struct {
	// Output is the changelog file to update.
	Output string `koanf:"output" yaml:"output"`

	// Title is the document title written when the changelog is created
	// for the first time.
	Title string `koanf:"title" yaml:"title"`

	// NonInteractive disables prompting; unknown prefixes become patch.
	// Can be set via CHANGELOGGER_NON_INTERACTIVE.
	NonInteractive bool `koanf:"non_interactive" yaml:"non_interactive"`

	// Rules maps extra commit type tokens to category names
	// (major, minor, patch, ignore). Consulted for tokens the built-in
	// prefix table does not recognize, before any prompting.
	Rules map[string]string `koanf:"rules" yaml:"rules,omitempty"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// An empty projectConfigPath means the default ".changelogger.yml".
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	userPath, err := UserConfigPath()
	if err == nil {
		if err := loadYAML(k, userPath, false); err != nil {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	projectPath := projectConfigPath
	required := projectPath != ""
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	if err := loadYAML(k, projectPath, required); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// loadYAML merges one YAML config file into k. A missing file is only an
// error when the path was explicitly requested.
func loadYAML(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return fmt.Errorf("config file %s does not exist", path)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// envTransform maps CHANGELOGGER_NON_INTERACTIVE to "non_interactive" and
// CHANGELOGGER_RULES_FOO to "rules.foo".
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if token, ok := strings.CutPrefix(key, "rules_"); ok {
		return "rules." + token
	}
	return key
}

// UserConfigPath returns the XDG-style user config path,
// ~/.config/changelogger/config.yml.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "changelogger", "config.yml"), nil
}

// ProjectConfigPath returns the default project config path relative to the
// working directory.
func ProjectConfigPath() string {
	return ".changelogger.yml"
}

// YAML renders the effective configuration as YAML, used by "config show".
func (c *Configuration) YAML() ([]byte, error) {
	out, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return out, nil
}
