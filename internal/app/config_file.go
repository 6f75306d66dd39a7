package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally onto the CLI flags.
type FileConfig struct {
	Page struct {
		URL   string   `yaml:"url" json:"url"`
		Hints []string `yaml:"hints" json:"hints"`
	} `yaml:"page" json:"page"`

	Output struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"output" json:"output"`

	HTTP struct {
		UserAgent string        `yaml:"userAgent" json:"userAgent"`
		Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	} `yaml:"http" json:"http"`

	Workers int `yaml:"workers" json:"workers"`

	Similar struct {
		Max int `yaml:"max" json:"max"`
	} `yaml:"similar" json:"similar"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Apply overlays non-zero file values onto cfg. Callers apply explicit flag
// values afterwards, so flags win over the file and the file wins over
// defaults.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Page.URL != "" {
		cfg.PageURL = fc.Page.URL
	}
	if len(fc.Page.Hints) > 0 {
		cfg.FolderHints = fc.Page.Hints
	}
	if fc.Output.Dir != "" {
		cfg.OutputDir = fc.Output.Dir
	}
	if fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if fc.HTTP.Timeout > 0 {
		cfg.Timeout = fc.HTTP.Timeout
	}
	if fc.Workers > 0 {
		cfg.MaxWorkers = fc.Workers
	}
	if fc.Similar.Max > 0 {
		cfg.MaxSimilar = fc.Similar.Max
	}
}
