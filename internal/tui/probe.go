package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/sampling"
	"github.com/san-kum/coulomb/internal/vecmath"
	"github.com/san-kum/coulomb/internal/viz"
)

const (
	minStep = 1e-4
	maxStep = 10.0
)

// Model is an interactive probe: arrow keys move an observation point in
// the grid plane and the view shows E and V there.
type Model struct {
	name     string
	src      electro.Source
	charges  []electro.Charge
	fm       *sampling.FieldMap
	start    vecmath.Vector
	probe    vecmath.Vector
	step     float64
	renderer viz.FieldRenderer
	quitting bool
}

// NewProbe samples grid once for the background map. The probe starts at
// start projected onto the grid plane.
func NewProbe(name string, src electro.Source, sys *electro.System, grid sampling.Grid, start vecmath.Vector) (Model, error) {
	fm, err := sampling.SampleGrid(src, grid)
	if err != nil {
		return Model{}, err
	}
	u, v := grid.Project(start)
	p := grid.Embed(u, v)
	step := (grid.Max[0] - grid.Min[0]) / float64(grid.Nx-1)
	return Model{
		name:     name,
		src:      src,
		charges:  sys.Charges(),
		fm:       fm,
		start:    p,
		probe:    p,
		step:     step,
		renderer: *viz.NewFieldRenderer(60, 20),
	}, nil
}

func (m Model) Probe() vecmath.Vector { return m.probe }
func (m Model) Step() float64         { return m.step }

func (m Model) Sample() sampling.Sample {
	return sampling.Probe(m.src, m.probe)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		w, h := msg.Width-30, msg.Height-8
		if w >= 20 && h >= 6 {
			m.renderer.Width, m.renderer.Height = w, h
		}
	}
	return m, nil
}

func (m Model) move(du, dv float64) Model {
	g := m.fm.Grid
	u, v := g.Project(m.probe)
	m.probe = g.Embed(u+du*m.step, v+dv*m.step)
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m = m.move(0, 1)
	case "down", "j":
		m = m.move(0, -1)
	case "left", "h":
		m = m.move(-1, 0)
	case "right", "l":
		m = m.move(1, 0)
	case "+", "=":
		if m.step*2 <= maxStep {
			m.step *= 2
		}
	case "-", "_":
		if m.step/2 >= minStep {
			m.step /= 2
		}
	case "r":
		m.probe = m.start
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	probe := m.probe
	r := m.renderer
	r.Probe = &probe
	mapView := viz.PanelStyle.Render(r.Render(m.fm, m.charges))

	var stats strings.Builder
	stats.WriteString(viz.HeaderStyle.Render(m.name) + "\n")
	stats.WriteString(viz.Row("probe", probe.String()) + "\n")
	stats.WriteString(viz.Row("step", fmt.Sprintf("%g m", m.step)) + "\n\n")

	s := m.Sample()
	if s.Singular() {
		stats.WriteString(viz.ErrorStyle.Render("singular: probe on a charge") + "\n")
	} else {
		stats.WriteString(viz.Row("E (V/m)", s.E.String()) + "\n")
		stats.WriteString(viz.Row("|E| (V/m)", fmt.Sprintf("%.6g", s.E.Norm())) + "\n")
		stats.WriteString(viz.Row("V (V)", fmt.Sprintf("%.6g", s.V)) + "\n")
	}
	stats.WriteString(viz.Row("charges", fmt.Sprintf("%d", len(m.charges))))

	help := viz.HelpStyle.Render("arrows/hjkl move  +/- step  r reset  q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, mapView, "  ", stats.String()),
		help,
	)
}

// Run starts the probe in the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
