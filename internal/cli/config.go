package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

// Config represents the configuration for avxctl. It contains the
// controller address and login credentials. Credentials can also be
// supplied through the AVX_CONTROLLER, AVX_USERNAME and AVX_PASSWORD
// environment variables (a .env file in the working directory is honored),
// which take precedence over the file.
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// Controller is the host name or IP address of the Aviatrix Controller
	Controller string `yaml:"controller"`
	// Username is the controller login user
	Username string `yaml:"username"`
	// Password is the controller login password
	Password string `yaml:"password"`
	// StrictTLS re-enables certificate verification against the controller
	StrictTLS bool `yaml:"strict_tls"`
	// Timeout is the per-request timeout, e.g. "30s"; empty means no limit
	Timeout string `yaml:"timeout"`
}

var config *Config

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/avxctl on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "avxctl", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file, falling back
// to the default config location, then applies environment overrides.
func LoadConfig(file string) error {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	c := &Config{}
	yamlStr, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(yamlStr, c); err != nil {
			return fmt.Errorf("unable to parse config file: %w", err)
		}
	case os.IsNotExist(err) && envConfigured():
		// Config file is optional when the environment carries the settings.
	default:
		return fmt.Errorf("unable to read config file: %w", err)
	}

	applyEnvOverrides(c)

	if c.Controller == "" {
		return errors.New("controller address is required (config file or AVX_CONTROLLER)")
	}

	config = c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	return config
}

// WriteConfig writes the configuration to the specified file.
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(file), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	if err := os.WriteFile(file, yamlStr, os.FileMode(0600)); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}

// GetTimeout parses the configured request timeout. An empty setting means
// no client-side limit.
func (cfg *Config) GetTimeout() (time.Duration, error) {
	if cfg.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(cfg.Timeout)
}

func envConfigured() bool {
	return os.Getenv("AVX_CONTROLLER") != ""
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("AVX_CONTROLLER"); v != "" {
		c.Controller = v
	}
	if v := os.Getenv("AVX_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("AVX_PASSWORD"); v != "" {
		c.Password = v
	}
}
