package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".dockvet.yaml"

// Config holds operator-extensible rule parameters. Rules that match against
// package names, file patterns, or image names read their lists from here so
// the catalogue can be extended without recompiling.
type Config struct {
	// UnnecessaryPackages are packages flagged when installed in an image.
	UnnecessaryPackages []string `yaml:"unnecessary_packages"`

	// SensitiveCopyPatterns are filename substrings flagged in COPY/ADD sources.
	SensitiveCopyPatterns []string `yaml:"sensitive_copy_patterns"`

	// SecretNamePatterns are variable-name substrings treated as secrets in
	// ENV/ARG assignments, matched case-insensitively.
	SecretNamePatterns []string `yaml:"secret_name_patterns"`

	// TrustedImages are base images exempt from tag pinning (e.g. scratch).
	TrustedImages []string `yaml:"trusted_images"`
}

// Default returns the built-in rule parameters.
func Default() *Config {
	return &Config{
		UnnecessaryPackages: []string{
			"vim", "nano", "emacs", "curl", "wget", "netcat", "telnet", "ssh",
		},
		SensitiveCopyPatterns: []string{
			".env", "credentials", ".pem", ".key", "id_rsa",
		},
		SecretNamePatterns: []string{
			"password", "secret", "key", "token", "credential", "auth",
		},
		TrustedImages: []string{"scratch"},
	}
}

// Load reads a config file, falling back to defaults for any list left
// unset. An explicitly named file must exist; the default path is optional.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	def := Default()
	if cfg.UnnecessaryPackages == nil {
		cfg.UnnecessaryPackages = def.UnnecessaryPackages
	}
	if cfg.SensitiveCopyPatterns == nil {
		cfg.SensitiveCopyPatterns = def.SensitiveCopyPatterns
	}
	if cfg.SecretNamePatterns == nil {
		cfg.SecretNamePatterns = def.SecretNamePatterns
	}
	if cfg.TrustedImages == nil {
		cfg.TrustedImages = def.TrustedImages
	}
	return cfg, nil
}
