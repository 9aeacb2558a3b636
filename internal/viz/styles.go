package viz

import "github.com/charmbracelet/lipgloss"

var (
	PositiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	NegativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	NeutralStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	FieldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	ProbeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	PanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const (
	PositiveMark = '+'
	NegativeMark = '-'
	NeutralMark  = 'o'
	ProbeMark    = 'x'
)

// ChargeMark returns the marker rune for a charge of the given sign.
func ChargeMark(sign int) rune {
	switch {
	case sign > 0:
		return PositiveMark
	case sign < 0:
		return NegativeMark
	default:
		return NeutralMark
	}
}

func styleMark(r rune) string {
	switch r {
	case PositiveMark:
		return PositiveStyle.Render(string(r))
	case NegativeMark:
		return NegativeStyle.Render(string(r))
	case ProbeMark:
		return ProbeStyle.Render(string(r))
	default:
		return NeutralStyle.Render(string(r))
	}
}

// Row renders a label/value pair.
func Row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), ValueStyle.Render(value))
}
