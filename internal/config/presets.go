package config

import "sort"

var Presets = map[string]*Scenario{
	"single": {
		Name:    "single",
		Charges: []ChargeConfig{{Q: 1e-6, At: []float64{0, 0, 0}}},
		Probe:   []float64{1, 0, 0},
	},
	"dipole": DefaultScenario(),
	"pair_repel": {
		Name: "pair_repel",
		Charges: []ChargeConfig{
			{Q: 1, At: []float64{0, 0, 0}},
			{Q: 1, At: []float64{1, 0, 0}},
		},
		Probe: []float64{0.5, 0.5, 0},
	},
	"quadrupole": {
		Name: "quadrupole",
		Charges: []ChargeConfig{
			{Q: 1e-6, At: []float64{1, 1, 0}},
			{Q: -1e-6, At: []float64{-1, 1, 0}},
			{Q: 1e-6, At: []float64{-1, -1, 0}},
			{Q: -1e-6, At: []float64{1, -1, 0}},
		},
		Probe: []float64{0, 0, 0},
	},
	"line": {
		Name: "line",
		Charges: []ChargeConfig{
			{Q: 2e-7, At: []float64{-1, 0, 0}},
			{Q: 2e-7, At: []float64{-0.5, 0, 0}},
			{Q: 2e-7, At: []float64{0, 0, 0}},
			{Q: 2e-7, At: []float64{0.5, 0, 0}},
			{Q: 2e-7, At: []float64{1, 0, 0}},
		},
		Probe: []float64{0, 0.5, 0},
	},
}

// GetPreset returns a copy of the named preset with grid and line defaults
// filled in, or nil.
func GetPreset(name string) *Scenario {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Charges = make([]ChargeConfig, len(p.Charges))
	for i, ch := range p.Charges {
		cfg.Charges[i] = ChargeConfig{Q: ch.Q, At: append([]float64(nil), ch.At...)}
	}
	cfg.Probe = append([]float64(nil), p.Probe...)
	if cfg.Grid.Nx == 0 {
		cfg.Grid = DefaultGrid()
	}
	if cfg.Line.N == 0 {
		cfg.Line = DefaultLine()
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
