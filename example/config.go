package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the example's YAML configuration. The CAPTURE_TOKEN and
// PRIVATE_KEY environment variables override the file, so it can be kept
// free of secrets.
type Config struct {
	Token      string `yaml:"token"`
	PrivateKey string `yaml:"private_key"`
	Testnet    bool   `yaml:"testnet"`
	BaseURL    string `yaml:"base_url"`

	// File is registered as the asset; when empty the example generates a
	// small test PNG instead.
	File string `yaml:"file"`

	// Output is where the generated test PNG is written.
	Output string `yaml:"output"`
}

// loadConfig reads the configuration file when it exists, applies
// environment overrides, and fills defaults.
func loadConfig(filename string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w", filename, err)
		}
	case os.IsNotExist(err):
		// Environment variables alone may carry the config.
	default:
		return nil, fmt.Errorf("error reading config file %s: %w", filename, err)
	}

	if token := os.Getenv("CAPTURE_TOKEN"); token != "" {
		config.Token = token
	}
	if key := os.Getenv("PRIVATE_KEY"); key != "" {
		config.PrivateKey = key
	}

	if config.Token == "" {
		return nil, fmt.Errorf("token is required (set it in %s or via CAPTURE_TOKEN)", filename)
	}

	if config.Output == "" {
		config.Output = "capture-example.png"
	}

	return &config, nil
}
