package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the CLI flags.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Knowledge struct {
		Equipment    string `yaml:"equipment" json:"equipment"`
		Requirements string `yaml:"requirements" json:"requirements"`
		Standards    string `yaml:"standards" json:"standards"`
		Issuers      string `yaml:"issuers" json:"issuers"`
	} `yaml:"knowledge" json:"knowledge"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			if jerr := json.Unmarshal(raw, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file-config values into cfg for fields still at
// their zero value, so explicit flags always win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputDir == "" && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if cfg.OutputDir == "" && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.Knowledge.Equipment == "" && fc.Knowledge.Equipment != "" {
		cfg.Knowledge.Equipment = fc.Knowledge.Equipment
	}
	if cfg.Knowledge.Requirements == "" && fc.Knowledge.Requirements != "" {
		cfg.Knowledge.Requirements = fc.Knowledge.Requirements
	}
	if cfg.Knowledge.Standards == "" && fc.Knowledge.Standards != "" {
		cfg.Knowledge.Standards = fc.Knowledge.Standards
	}
	if cfg.Knowledge.Issuers == "" && fc.Knowledge.Issuers != "" {
		cfg.Knowledge.Issuers = fc.Knowledge.Issuers
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
