package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/pagegen-labs/pagegen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyProjectRoot  = "project_root"
	KeyStagingDir   = "staging_dir"
	KeySentinel     = "sentinel"
	KeyImportRoot   = "import_root"
	KeyTemplatesDir = "templates_dir"
	KeyUI           = "ui"
	KeyRefBase      = "reference_base"
)

// UI modes accepted by the "ui" key.
const (
	UIAuto  = "auto"
	UITUI   = "tui"
	UIPlain = "plain"
)

// Reference bases accepted by the "reference_base" key. Default reference
// paths are built from the destination folder, or from the part of it below
// the sentinel folder.
const (
	RefBaseDestination = "destination"
	RefBaseSentinel    = "sentinel"
)

var defaults = map[string]string{
	KeyProjectRoot:  ".",
	KeyStagingDir:   "output",
	KeySentinel:     "Notes",
	KeyImportRoot:   "",
	KeyTemplatesDir: "",
	KeyUI:           UIAuto,
	KeyRefBase:      RefBaseDestination,
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	ProjectRoot  string
	StagingDir   string
	Sentinel     string
	ImportRoot   string
	TemplatesDir string
	UI           string
	RefBase      string
}

// SentinelReferences reports whether default reference paths are taken
// relative to the sentinel folder.
func (s Settings) SentinelReferences() bool {
	return s.RefBase == RefBaseSentinel
}

// Dir returns the path to the config directory. PAGEGEN_HOME wins over ~/.pagegen.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pagegen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		ProjectRoot:  viper.GetString(KeyProjectRoot),
		StagingDir:   viper.GetString(KeyStagingDir),
		Sentinel:     viper.GetString(KeySentinel),
		ImportRoot:   viper.GetString(KeyImportRoot),
		TemplatesDir: viper.GetString(KeyTemplatesDir),
		UI:           viper.GetString(KeyUI),
		RefBase:      viper.GetString(KeyRefBase),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if key == KeyUI && !slices.Contains([]string{UIAuto, UITUI, UIPlain}, value) {
		return fmt.Errorf("invalid ui mode %q: must be auto, tui, or plain", value)
	}
	if key == KeyRefBase && value != RefBaseDestination && value != RefBaseSentinel {
		return fmt.Errorf("invalid reference base %q: must be %s or %s", value, RefBaseDestination, RefBaseSentinel)
	}
	if key == KeySentinel && value == "" {
		return fmt.Errorf("sentinel must not be empty")
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
