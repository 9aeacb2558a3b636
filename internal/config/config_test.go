package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/coulomb/internal/electro"
)

func TestDefaultScenario(t *testing.T) {
	cfg := DefaultScenario()

	if cfg.Name != "dipole" {
		t.Errorf("expected name dipole, got %s", cfg.Name)
	}
	if len(cfg.Charges) != 2 {
		t.Fatalf("expected 2 charges, got %d", len(cfg.Charges))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default scenario should validate: %v", err)
	}

	sys, err := cfg.System()
	if err != nil {
		t.Fatalf("System: %v", err)
	}
	if sys.TotalCharge() != 0 {
		t.Errorf("dipole should be neutral, got %g", sys.TotalCharge())
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := `name: triangle
charges:
  - q: 1.0e-6
    at: [0, 0, 0]
  - q: -2.0e-6
    at: [1, 0, 0]
  - q: 1.0e-6
    at: [0.5, 0.8, 0]
grid:
  plane: xz
  min: [-1, -1]
  max: [1, 1]
  nx: 5
  ny: 7
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "triangle" || len(cfg.Charges) != 3 {
		t.Errorf("unexpected scenario %+v", cfg)
	}
	if cfg.Grid.Plane != "xz" || cfg.Grid.Nx != 5 || cfg.Grid.Ny != 7 {
		t.Errorf("unexpected grid %+v", cfg.Grid)
	}
	// untouched sections keep their defaults
	if cfg.Line.N != DefaultLineN {
		t.Errorf("expected default line samples, got %d", cfg.Line.N)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	data := `name = "pair"
softening = 0.01

[[charges]]
q = 1.0
at = [0.0, 0.0, 0.0]

[[charges]]
q = 1.0
at = [1.0, 0.0, 0.0]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "pair" || len(cfg.Charges) != 2 || cfg.Softening != 0.01 {
		t.Errorf("unexpected scenario %+v", cfg)
	}

	src, sys, err := cfg.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	// softened sources are finite on a charge
	if _, err := src.FieldAt(sys.At(0).Location()); err != nil {
		t.Errorf("softened field should not fail: %v", err)
	}
}

func TestLoadRejectsBadLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "charges:\n  - q: 1\n    at: [1, 2]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, electro.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestForcesHonoursSoftening(t *testing.T) {
	cfg := DefaultScenario()
	cfg.Charges = []ChargeConfig{
		{Q: 1e-6, At: []float64{0, 0, 0}},
		{Q: 1e-6, At: []float64{0, 0, 0}},
	}

	if _, _, err := cfg.Forces(); !errors.Is(err, electro.ErrDomain) {
		t.Errorf("exact forces on coincident charges: expected ErrDomain, got %v", err)
	}

	cfg.Softening = 0.01
	sys, forces, err := cfg.Forces()
	if err != nil {
		t.Fatalf("softened forces should not fail: %v", err)
	}
	if sys.Len() != 2 || len(forces) != 2 {
		t.Fatalf("expected 2 forces, got %d", len(forces))
	}
	for i, f := range forces {
		if !f.IsValid() {
			t.Errorf("force %d not finite: %v", i, f)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"scene.yaml", "scene.toml"} {
		path := filepath.Join(dir, name)
		cfg := GetPreset("quadrupole")
		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if len(loaded.Charges) != 4 || loaded.Charges[1].Q != -1e-6 {
			t.Errorf("%s: charges not preserved: %+v", name, loaded.Charges)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"no charges", func(s *Scenario) { s.Charges = nil }},
		{"bad plane", func(s *Scenario) { s.Grid.Plane = "xw" }},
		{"tiny grid", func(s *Scenario) { s.Grid.Nx = 1 }},
		{"degenerate bounds", func(s *Scenario) { s.Grid.Max = s.Grid.Min }},
		{"short line", func(s *Scenario) { s.Line.N = 1 }},
		{"bad probe", func(s *Scenario) { s.Probe = []float64{1} }},
		{"negative softening", func(s *Scenario) { s.Softening = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultScenario()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, electro.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pair_repel")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Charges[0].Q != 1 {
		t.Errorf("expected q 1, got %f", cfg.Charges[0].Q)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	// presets are copied out
	cfg.Charges[0].At[0] = 42
	if Presets["pair_repel"].Charges[0].At[0] == 42 {
		t.Error("GetPreset returned shared storage")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
