package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/oneloop"
)

// LogConfig selects a diagnostic unit and its sink. A nil Sink keeps
// the default sink (standard output, Fortran unit 6).
type LogConfig struct {
	Unit string `yaml:"unit"`
	Sink *int   `yaml:"sink"`
}

// Config is the YAML configuration file schema. Absent fields leave
// the corresponding setting untouched.
type Config struct {
	Scale     *float64   `yaml:"scale"`
	Threshold *float64   `yaml:"threshold"`
	Log       *LogConfig `yaml:"log"`
}

// LoadConfig reads and strictly decodes a YAML configuration file;
// unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply pushes the configured values into the evaluation layer.
func (c *Config) Apply() error {
	if c.Scale != nil {
		if err := oneloop.SetRenormalizationScale(*c.Scale); err != nil {
			return err
		}
	}
	if c.Threshold != nil {
		if err := oneloop.SetOnshellThreshold(*c.Threshold); err != nil {
			return err
		}
	}
	if c.Log != nil {
		u, err := oneloop.ParseUnit(c.Log.Unit)
		if err != nil {
			return err
		}
		if c.Log.Sink != nil {
			return oneloop.SetLogLevel(u, oneloop.Sink(*c.Log.Sink))
		}
		return oneloop.SetLogLevel(u)
	}
	return nil
}
