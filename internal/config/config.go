package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"
)

const (
	APP_NAME    = "mangle"
	CONFIG_FILE = "config.yaml"
	LOG_ENV     = "MANGLE_LOG"
)

var DEFAULT_CONFIG_FILE string = `# mangle configuration
show_tree: false
show_program: false
color: true
history_file: history
log_level: warn
`

var DEFAULT_DEV_CONFIG_FILE string = `# mangle configuration (dev mode)
show_tree: true
show_program: true
color: true
history_file: history
log_level: debug
`

type Config struct {
	// Dir is the directory the config was loaded from.
	Dir string `yaml:"-"`

	ShowTree    bool   `yaml:"show_tree"`
	ShowProgram bool   `yaml:"show_program"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Color:       true,
		HistoryFile: "history",
		LogLevel:    "warn",
	}
}

// Setup loads the config from the user's config directory, creating the
// directory and a default config file when they don't exist yet.
func Setup() (*Config, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

// Load reads CONFIG_FILE from dir. Keys missing from the file keep their
// default values and unknown keys are rejected. MANGLE_LOG, when set,
// overrides log_level.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, CONFIG_FILE)
	if err := bootstrapConfigFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if level := os.Getenv(LOG_ENV); level != "" {
		cfg.LogLevel = level
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	cfg.Dir = dir
	if cfg.HistoryFile != "" && !filepath.IsAbs(cfg.HistoryFile) {
		cfg.HistoryFile = filepath.Join(dir, cfg.HistoryFile)
	}
	return cfg, nil
}

func (cfg *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return level, nil
}

// ShowAll writes every setting as key='value', one per line.
func (cfg *Config) ShowAll(w io.Writer) {
	v := reflect.ValueOf(cfg).Elem()

	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		yamlTag := field.Tag.Get("yaml")
		if yamlTag == "" || yamlTag == "-" {
			continue
		}
		fmt.Fprintf(w, "%s='%v'\n", yamlTag, v.Field(i).Interface())
	}
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", err
	}

	return configDir, nil
}

// bootstrapConfigFile writes the default config when path doesn't exist. In
// dev mode the file is always rewritten so local edits don't linger.
func bootstrapConfigFile(path string) error {
	_, err := os.Stat(path)
	switch {
	case err == nil && !DEV:
		return nil
	case err != nil && !os.IsNotExist(err):
		return err
	}

	content := DEFAULT_CONFIG_FILE
	if DEV {
		content = DEFAULT_DEV_CONFIG_FILE
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
