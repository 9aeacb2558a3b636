package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/gosimple/slug"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/sampling"
	"github.com/san-kum/coulomb/internal/vecmath"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

var samplesHeader = []string{"x", "y", "z", "ex", "ey", "ez", "v", "singular"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ChargeRecord struct {
	Q  float64    `json:"q"`
	At [3]float64 `json:"at"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Plane     string             `json:"plane"`
	Min       [2]float64         `json:"min"`
	Max       [2]float64         `json:"max"`
	Offset    float64            `json:"offset"`
	Nx        int                `json:"nx"`
	Ny        int                `json:"ny"`
	Softening float64            `json:"softening,omitempty"`
	Charges   []ChargeRecord     `json:"charges"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (m *RunMetadata) Grid() sampling.Grid {
	return sampling.Grid{Plane: m.Plane, Min: m.Min, Max: m.Max, Offset: m.Offset, Nx: m.Nx, Ny: m.Ny}
}

func (m *RunMetadata) System() *electro.System {
	sys := electro.NewSystem()
	for _, c := range m.Charges {
		sys.Add(electro.NewAt(c.Q, vecmath.Vector(c.At)))
	}
	return sys
}

// Save writes a sampled field map under a new run directory named after
// the scenario and returns the run id. A run that fails to write is removed.
func (s *Store) Save(scenario string, softening float64, sys *electro.System, fm *sampling.FieldMap) (string, error) {
	now := time.Now()
	runID, runDir, err := s.newRunDir(scenario, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: now,
		Plane:     fm.Grid.Plane,
		Min:       fm.Grid.Min,
		Max:       fm.Grid.Max,
		Offset:    fm.Grid.Offset,
		Nx:        fm.Grid.Nx,
		Ny:        fm.Grid.Ny,
		Softening: softening,
		Metrics:   sampling.Summarize(fm.Samples),
	}
	for _, c := range sys.Charges() {
		meta.Charges = append(meta.Charges, ChargeRecord{Q: c.Magnitude(), At: [3]float64(c.Location())})
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), &meta); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("run %s: %w", runID, err)
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), fm.Samples); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("run %s: %w", runID, err)
	}
	return runID, nil
}

func (s *Store) newRunDir(scenario string, now time.Time) (string, string, error) {
	name := slug.Make(scenario)
	if name == "" {
		name = "run"
	}
	base := fmt.Sprintf("%s_%d", name, now.Unix())
	runID := base
	for n := 2; ; n++ {
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s-%d", base, n)
	}
}

func writeMetadata(path string, meta *RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeSamples(path string, samples []sampling.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(samplesHeader); err != nil {
		return err
	}
	for _, smp := range samples {
		row := make([]string, 0, len(samplesHeader))
		for _, v := range smp.At {
			row = append(row, formatFloat(v))
		}
		for _, v := range smp.E {
			row = append(row, formatFloat(v))
		}
		row = append(row, formatFloat(smp.V), strconv.FormatBool(smp.Singular()))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads the samples of a run. Singular samples come back with
// Err set to electro.ErrDomain.
func (s *Store) LoadSamples(runID string) ([]sampling.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(samplesHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []sampling.Sample{}, nil
	}

	samples := make([]sampling.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [7]float64
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s row %d: %w", runID, i+1, err)
			}
		}
		smp := sampling.Sample{
			At: vecmath.Vec(vals[0], vals[1], vals[2]),
			E:  vecmath.Vec(vals[3], vals[4], vals[5]),
			V:  vals[6],
		}
		if singular, _ := strconv.ParseBool(record[7]); singular {
			smp.Err = electro.ErrDomain
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

// LoadFieldMap rebuilds the field map and charge set of a run.
func (s *Store) LoadFieldMap(runID string) (*sampling.FieldMap, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return nil, nil, err
	}
	g := meta.Grid()
	if len(samples) != g.Nx*g.Ny {
		return nil, nil, fmt.Errorf("run %s: %d samples for a %dx%d grid", runID, len(samples), g.Nx, g.Ny)
	}
	return &sampling.FieldMap{Grid: g, Samples: samples}, meta, nil
}
