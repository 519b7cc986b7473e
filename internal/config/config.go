package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 100
	DefaultSteps     = 100
	DefaultParticles = 50
	DefaultSigma     = 0.5
	DefaultExtent    = 100.0
	DefaultInterval  = 10 * time.Millisecond
	DefaultDisplay   = "terminal"
	DefaultTheme     = "cyberpunk"
	DefaultLogLevel  = "warn"
)

type Config struct {
	Seed       int64            `yaml:"seed"`
	Display    string           `yaml:"display"`
	OutputDir  string           `yaml:"output_dir"`
	Interval   time.Duration    `yaml:"frame_interval"`
	Theme      string           `yaml:"theme"`
	LogLevel   string           `yaml:"log_level"`
	Plasma     PlasmaConfig     `yaml:"plasma"`
	Neutrino   NeutrinoConfig   `yaml:"neutrino"`
	DarkMatter DarkMatterConfig `yaml:"dark_matter"`
}

type PlasmaConfig struct {
	Size  int     `yaml:"size"`
	Quark float64 `yaml:"quark"`
	Gluon float64 `yaml:"gluon"`
	Empty float64 `yaml:"empty"`
}

type NeutrinoConfig struct {
	Steps int `yaml:"steps"`
}

type DarkMatterConfig struct {
	Particles int     `yaml:"particles"`
	Steps     int     `yaml:"steps"`
	Sigma     float64 `yaml:"sigma"`
	Extent    float64 `yaml:"extent"`
}

func DefaultConfig() *Config {
	return &Config{
		Display:  DefaultDisplay,
		Interval: DefaultInterval,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Plasma: PlasmaConfig{
			Size:  DefaultSize,
			Quark: 0.3,
			Gluon: 0.3,
			Empty: 0.4,
		},
		Neutrino: NeutrinoConfig{Steps: DefaultSteps},
		DarkMatter: DarkMatterConfig{
			Particles: DefaultParticles,
			Steps:     DefaultSteps,
			Sigma:     DefaultSigma,
			Extent:    DefaultExtent,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// PlasmaParams returns the plasma weights keyed by parameter name.
func (c *Config) PlasmaParams() map[string]float64 {
	return map[string]float64{
		"quark": c.Plasma.Quark,
		"gluon": c.Plasma.Gluon,
		"empty": c.Plasma.Empty,
	}
}

// DarkMatterParams returns the dark matter tunables keyed by parameter name.
func (c *Config) DarkMatterParams() map[string]float64 {
	return map[string]float64{
		"sigma":  c.DarkMatter.Sigma,
		"extent": c.DarkMatter.Extent,
	}
}
