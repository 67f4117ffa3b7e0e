package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/transitlab/internal/transit"
)

const (
	DefaultPeriodDays   = 3243.57
	DefaultMstarSolar   = 1.45
	DefaultRstarSolar   = 1.591
	DefaultDepth        = 0.031
	DefaultDepthErr     = 0.002
	DefaultDurationDays = 1.725
	DefaultDurationErr  = 0.1
)

// ObjectConfig is one observed light-curve object as written in a catalog
// file. Uncertainty fields may be omitted and default to zero.
type ObjectConfig struct {
	Name            string  `yaml:"name"`
	PeriodDays      float64 `yaml:"period_days"`
	MstarSolar      float64 `yaml:"mstar_solar"`
	RstarSolar      float64 `yaml:"rstar_solar"`
	Depth           float64 `yaml:"depth"`
	DepthErr        float64 `yaml:"depth_err,omitempty"`
	DurationDays    float64 `yaml:"duration_days"`
	DurationErrDays float64 `yaml:"duration_err_days,omitempty"`
}

// Catalog is a named list of objects to run through the pipeline.
type Catalog struct {
	Name    string         `yaml:"name"`
	Objects []ObjectConfig `yaml:"objects"`
}

func DefaultConfig() *ObjectConfig {
	return &ObjectConfig{
		Name:            "230",
		PeriodDays:      DefaultPeriodDays,
		MstarSolar:      DefaultMstarSolar,
		RstarSolar:      DefaultRstarSolar,
		Depth:           DefaultDepth,
		DepthErr:        DefaultDepthErr,
		DurationDays:    DefaultDurationDays,
		DurationErrDays: DefaultDurationErr,
	}
}

func Load(path string) (*ObjectConfig, error) {
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

func Save(path string, cfg *ObjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func SaveCatalog(path string, cat *Catalog) error {
	data, err := yaml.Marshal(cat)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Inputs converts the catalog record into the pipeline's input form.
func (c *ObjectConfig) Inputs() transit.SystemInputs {
	return transit.SystemInputs{
		Name:                   c.Name,
		PeriodDays:             c.PeriodDays,
		StellarMassSolar:       c.MstarSolar,
		StellarRadiusSolar:     c.RstarSolar,
		TransitDepth:           c.Depth,
		TransitDepthErr:        c.DepthErr,
		TransitDurationDays:    c.DurationDays,
		TransitDurationErrDays: c.DurationErrDays,
	}
}
