package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the foliodex API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Search    SearchConfig    `yaml:"search"`
	Assistant AssistantConfig `yaml:"assistant"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	Source           string   `yaml:"source"` // file (default), valkey, redis
	Path             string   `yaml:"path"`   // file source
	Addrs            []string `yaml:"addrs"`  // valkey/redis source
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// SearchConfig holds search endpoint settings.
type SearchConfig struct {
	MaxQueryLength int `yaml:"max_query_length"`
	MaxLimit       int `yaml:"max_limit"`
}

// AssistantConfig holds chat assistant provider settings. An empty api_key
// disables the assistant endpoint.
type AssistantConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR} / ${VAR:-default}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = filepath.Join("data", "projects.json")
	}
	if c.Catalog.KeyPrefix == "" {
		c.Catalog.KeyPrefix = "foliodex:"
	}
	if c.Catalog.ReadinessTimeout <= 0 {
		c.Catalog.ReadinessTimeout = 10
	}
	if c.Search.MaxQueryLength <= 0 {
		c.Search.MaxQueryLength = 512
	}
	if c.Search.MaxLimit <= 0 {
		c.Search.MaxLimit = 100
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gpt-4o-mini"
	}
	if c.Assistant.TimeoutSec <= 0 {
		c.Assistant.TimeoutSec = 30
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	switch c.Catalog.Source {
	case "file":
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	case "valkey", "redis":
		if len(c.Catalog.Addrs) == 0 {
			return fmt.Errorf("catalog.addrs is required for the %s source", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("catalog.source must be \"file\", \"valkey\" or \"redis\", got %q", c.Catalog.Source)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
