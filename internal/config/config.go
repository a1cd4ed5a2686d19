// Package config handles configuration loading for an OAI-PMH
// responder process.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so deployment-specific
// values like the base URL can be injected at runtime.
//
// # Configuration Sections
//
//   - repository: identity advertised by the Identify verb
//   - responder: validation gate settings
//
// # Example Configuration
//
//	repository:
//	  name: Example Institutional Repository
//	  baseURL: ${BASE_URL}
//	  adminEmails:
//	    - admin@example.org
//	  earliestDatestamp: "2002-01-01T00:00:00Z"
//	  deletedRecord: transient
//	  granularity: second
//	  compression:
//	    - identity
//
//	responder:
//	  validation: true
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/miku/pyoai/pkg/datestamp"
	"github.com/miku/pyoai/pkg/provider"
)

// Config is the root configuration structure.
type Config struct {
	Repository RepositoryConfig `yaml:"repository"`
	Responder  ResponderConfig  `yaml:"responder"`
}

// RepositoryConfig holds the identity advertised by Identify.
type RepositoryConfig struct {
	Name              string   `yaml:"name"`
	BaseURL           string   `yaml:"baseURL"`
	AdminEmails       []string `yaml:"adminEmails"`
	EarliestDatestamp string   `yaml:"earliestDatestamp"`
	DeletedRecord     string   `yaml:"deletedRecord"`
	Granularity       string   `yaml:"granularity"`
	Compression       []string `yaml:"compression"`
}

// ResponderConfig holds responder behavior settings.
type ResponderConfig struct {
	// Validation toggles the envelope validation gate. Absent means
	// enabled; disabling it is meant for debugging only.
	Validation *bool `yaml:"validation"`
}

// ValidationEnabled reports whether the validation gate is on.
func (c ResponderConfig) ValidationEnabled() bool {
	return c.Validation == nil || *c.Validation
}

// Load reads and validates configuration from a YAML file, expanding
// environment variable references first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	r := c.Repository
	if r.Name == "" {
		return fmt.Errorf("repository.name is required")
	}
	if r.BaseURL == "" {
		return fmt.Errorf("repository.baseURL is required")
	}
	if len(r.AdminEmails) == 0 {
		return fmt.Errorf("repository.adminEmails must not be empty")
	}
	if !provider.DeletedRecordPolicy(r.DeletedRecord).Valid() {
		return fmt.Errorf("repository.deletedRecord: unknown policy %q", r.DeletedRecord)
	}
	if !datestamp.Granularity(r.Granularity).Valid() {
		return fmt.Errorf("repository.granularity: unknown granularity %q", r.Granularity)
	}
	if r.EarliestDatestamp != "" {
		if _, err := datestamp.Parse(r.EarliestDatestamp); err != nil {
			return fmt.Errorf("repository.earliestDatestamp: %w", err)
		}
	}
	return nil
}

// Identity converts the repository section into the provider type. The
// compression list defaults to ["identity"] when unset.
func (c *Config) Identity() provider.RepositoryIdentity {
	earliest := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if c.Repository.EarliestDatestamp != "" {
		// validated in Load
		earliest, _ = datestamp.Parse(c.Repository.EarliestDatestamp)
	}
	compression := c.Repository.Compression
	if len(compression) == 0 {
		compression = []string{"identity"}
	}
	return provider.RepositoryIdentity{
		RepositoryName:    c.Repository.Name,
		BaseURL:           c.Repository.BaseURL,
		ProtocolVersion:   "2.0",
		AdminEmails:       c.Repository.AdminEmails,
		EarliestDatestamp: earliest,
		DeletedRecord:     provider.DeletedRecordPolicy(c.Repository.DeletedRecord),
		Granularity:       datestamp.Granularity(c.Repository.Granularity),
		Compression:       compression,
	}
}
