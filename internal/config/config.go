// Package config loads the reconciliation run configuration from an
// optional YAML file with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for one reconciliation run.
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs"`
	Outputs  OutputsConfig  `yaml:"outputs"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// InputsConfig names the three CRM export files.
type InputsConfig struct {
	Constituents  string `yaml:"constituents"`
	Emails        string `yaml:"emails"`
	Subscriptions string `yaml:"subscriptions"`
}

// OutputsConfig names the two derived files.
type OutputsConfig struct {
	People           string `yaml:"people"`
	AcquisitionFacts string `yaml:"acquisition_facts"`
}

// PipelineConfig holds derivation settings.
type PipelineConfig struct {
	// ChapterID selects the chapter whose subscriptions feed the person
	// list. The exports this tool was built for use chapter 1.
	ChapterID int64 `yaml:"chapter_id"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is present,
// matching the conventional export filenames so a bare invocation in the
// export directory just works.
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Constituents:  "cons.csv",
			Emails:        "cons_email.csv",
			Subscriptions: "chapter.csv",
		},
		Outputs: OutputsConfig{
			People:           "people.csv",
			AcquisitionFacts: "acquisition_facts.csv",
		},
		Pipeline: PipelineConfig{ChapterID: 1},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads and parses the configuration file. A missing file is not an
// error; the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Set defaults
	def := Default()
	if cfg.Inputs.Constituents == "" {
		cfg.Inputs.Constituents = def.Inputs.Constituents
	}
	if cfg.Inputs.Emails == "" {
		cfg.Inputs.Emails = def.Inputs.Emails
	}
	if cfg.Inputs.Subscriptions == "" {
		cfg.Inputs.Subscriptions = def.Inputs.Subscriptions
	}
	if cfg.Outputs.People == "" {
		cfg.Outputs.People = def.Outputs.People
	}
	if cfg.Outputs.AcquisitionFacts == "" {
		cfg.Outputs.AcquisitionFacts = def.Outputs.AcquisitionFacts
	}
	if cfg.Pipeline.ChapterID == 0 {
		cfg.Pipeline.ChapterID = def.Pipeline.ChapterID
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so local runs can keep paths in .env instead of exporting them.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if v := os.Getenv("CONS_FILE"); v != "" {
		cfg.Inputs.Constituents = v
	}
	if v := os.Getenv("CONS_EMAIL_FILE"); v != "" {
		cfg.Inputs.Emails = v
	}
	if v := os.Getenv("CHAPTER_FILE"); v != "" {
		cfg.Inputs.Subscriptions = v
	}
	if v := os.Getenv("PEOPLE_FILE"); v != "" {
		cfg.Outputs.People = v
	}
	if v := os.Getenv("ACQUISITION_FACTS_FILE"); v != "" {
		cfg.Outputs.AcquisitionFacts = v
	}
	if v := os.Getenv("CHAPTER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse CHAPTER_ID %q: %w", v, err)
		}
		cfg.Pipeline.ChapterID = id
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
