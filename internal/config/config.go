package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/sampling"
	"github.com/san-kum/coulomb/internal/vecmath"
)

const (
	DefaultName       = "dipole"
	DefaultCharge     = 1e-6
	DefaultSeparation = 1.0
	DefaultExtent     = 2.0
	DefaultResolution = 21
	DefaultLineN      = 101
)

type Scenario struct {
	Name      string         `yaml:"name" toml:"name"`
	Charges   []ChargeConfig `yaml:"charges" toml:"charges"`
	Probe     []float64      `yaml:"probe" toml:"probe"`
	Grid      GridConfig     `yaml:"grid" toml:"grid"`
	Line      LineConfig     `yaml:"line" toml:"line"`
	Softening float64        `yaml:"softening" toml:"softening"`
}

type ChargeConfig struct {
	Q  float64   `yaml:"q" toml:"q"`
	At []float64 `yaml:"at" toml:"at"`
}

// GridConfig describes a rectangular observation grid in one coordinate
// plane. Min and Max are the in-plane corners; Offset is the coordinate
// along the plane normal.
type GridConfig struct {
	Plane  string     `yaml:"plane" toml:"plane"`
	Min    [2]float64 `yaml:"min" toml:"min"`
	Max    [2]float64 `yaml:"max" toml:"max"`
	Offset float64    `yaml:"offset" toml:"offset"`
	Nx     int        `yaml:"nx" toml:"nx"`
	Ny     int        `yaml:"ny" toml:"ny"`
}

type LineConfig struct {
	From []float64 `yaml:"from" toml:"from"`
	To   []float64 `yaml:"to" toml:"to"`
	N    int       `yaml:"n" toml:"n"`
}

func DefaultGrid() GridConfig {
	return GridConfig{
		Plane: "xy",
		Min:   [2]float64{-DefaultExtent, -DefaultExtent},
		Max:   [2]float64{DefaultExtent, DefaultExtent},
		Nx:    DefaultResolution,
		Ny:    DefaultResolution,
	}
}

func DefaultLine() LineConfig {
	return LineConfig{
		From: []float64{-DefaultExtent, 0, 0},
		To:   []float64{DefaultExtent, 0, 0},
		N:    DefaultLineN,
	}
}

func DefaultScenario() *Scenario {
	half := DefaultSeparation / 2
	return &Scenario{
		Name: DefaultName,
		Charges: []ChargeConfig{
			{Q: DefaultCharge, At: []float64{-half, 0, 0}},
			{Q: -DefaultCharge, At: []float64{half, 0, 0}},
		},
		Probe: []float64{0, 1, 0},
		Grid:  DefaultGrid(),
		Line:  DefaultLine(),
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a scenario from YAML, or TOML when the file ends in .toml.
// Fields missing from the file keep their defaults; a file that defines
// charges replaces the default charge list.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultScenario()
	cfg.Charges = nil
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Scenario) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every location has three components and that the grid
// and line are usable.
func (c *Scenario) Validate() error {
	if len(c.Charges) == 0 {
		return fmt.Errorf("scenario %q: no charges: %w", c.Name, electro.ErrValidation)
	}
	for i, ch := range c.Charges {
		if _, err := vecmath.FromSlice(ch.At); err != nil {
			return fmt.Errorf("charge %d: %w", i, err)
		}
	}
	if len(c.Probe) != 0 {
		if _, err := vecmath.FromSlice(c.Probe); err != nil {
			return fmt.Errorf("probe: %w", err)
		}
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Line.Validate(); err != nil {
		return err
	}
	if c.Softening < 0 {
		return fmt.Errorf("softening %g is negative: %w", c.Softening, electro.ErrValidation)
	}
	return nil
}

func (g GridConfig) Grid() sampling.Grid {
	return sampling.Grid{Plane: g.Plane, Min: g.Min, Max: g.Max, Offset: g.Offset, Nx: g.Nx, Ny: g.Ny}
}

func (g GridConfig) Validate() error {
	return g.Grid().Validate()
}

// Line converts to the sampling form. Call Validate first.
func (l LineConfig) Line() sampling.Line {
	from, _ := vecmath.FromSlice(l.From)
	to, _ := vecmath.FromSlice(l.To)
	return sampling.Line{From: from, To: to, N: l.N}
}

func (l LineConfig) Validate() error {
	if _, err := vecmath.FromSlice(l.From); err != nil {
		return fmt.Errorf("line start: %w", err)
	}
	if _, err := vecmath.FromSlice(l.To); err != nil {
		return fmt.Errorf("line end: %w", err)
	}
	if l.N < 2 {
		return fmt.Errorf("line needs at least 2 samples, got %d: %w", l.N, electro.ErrValidation)
	}
	return nil
}

// System builds the kernel charge set.
func (c *Scenario) System() (*electro.System, error) {
	sys := electro.NewSystem()
	for i, ch := range c.Charges {
		q, err := electro.New(ch.Q, ch.At)
		if err != nil {
			return nil, fmt.Errorf("charge %d: %w", i, err)
		}
		sys.Add(q)
	}
	return sys, nil
}

// Source returns the exact system, or its softened form when Softening is
// set.
func (c *Scenario) Source() (electro.Source, *electro.System, error) {
	sys, err := c.System()
	if err != nil {
		return nil, nil, err
	}
	if c.Softening == 0 {
		return sys, sys, nil
	}
	soft, err := electro.NewSoftened(c.Softening)
	if err != nil {
		return nil, nil, err
	}
	return soft.Bind(sys), sys, nil
}

// Forces returns the net force on every charge, through the softened kernel
// when Softening is set.
func (c *Scenario) Forces() (*electro.System, []vecmath.Vector, error) {
	sys, err := c.System()
	if err != nil {
		return nil, nil, err
	}
	if c.Softening == 0 {
		forces, err := sys.Forces()
		if err != nil {
			return nil, nil, err
		}
		return sys, forces, nil
	}
	soft, err := electro.NewSoftened(c.Softening)
	if err != nil {
		return nil, nil, err
	}
	return sys, soft.ForcesOf(sys), nil
}

func (c *Scenario) ProbePoint() vecmath.Vector {
	v, err := vecmath.FromSlice(c.Probe)
	if err != nil {
		return vecmath.Zero
	}
	return v
}
