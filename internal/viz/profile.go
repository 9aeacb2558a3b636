package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coulomb/internal/sampling"
)

const (
	QuantityPotential = "potential"
	QuantityField     = "field"
)

// PlotProfile charts potential or |E| along a line. Singular points are
// left out of the series. It returns "" when nothing is plottable.
func PlotProfile(p *sampling.Profile, quantity string, width, height int) string {
	var data []float64
	caption := "potential (V) along line"
	if quantity == QuantityField {
		data = p.FieldMagnitudes()
		caption = "|E| (V/m) along line"
	} else {
		data = p.Potentials()
	}
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
