package sampling

import "math"

// Metric reduces a stream of samples to a single value.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type MaxField struct {
	max float64
}

func NewMaxField() *MaxField { return &MaxField{} }

func (m *MaxField) Name() string { return "max_field" }

func (m *MaxField) Observe(s Sample) {
	if s.Singular() {
		return
	}
	m.max = math.Max(m.max, s.E.Norm())
}

func (m *MaxField) Value() float64 { return m.max }
func (m *MaxField) Reset()         { m.max = 0 }

// PotentialExtreme tracks the minimum or maximum potential seen.
type PotentialExtreme struct {
	name string
	max  bool
	val  float64
	seen bool
}

func NewMinPotential() *PotentialExtreme {
	return &PotentialExtreme{name: "min_potential"}
}

func NewMaxPotential() *PotentialExtreme {
	return &PotentialExtreme{name: "max_potential", max: true}
}

func (p *PotentialExtreme) Name() string { return p.name }

func (p *PotentialExtreme) Observe(s Sample) {
	if s.Singular() {
		return
	}
	if !p.seen || (p.max && s.V > p.val) || (!p.max && s.V < p.val) {
		p.val = s.V
		p.seen = true
	}
}

func (p *PotentialExtreme) Value() float64 { return p.val }

func (p *PotentialExtreme) Reset() {
	p.val = 0
	p.seen = false
}

type SingularCount struct {
	n int
}

func NewSingularCount() *SingularCount { return &SingularCount{} }

func (c *SingularCount) Name() string { return "singular_points" }

func (c *SingularCount) Observe(s Sample) {
	if s.Singular() {
		c.n++
	}
}

func (c *SingularCount) Value() float64 { return float64(c.n) }
func (c *SingularCount) Reset()         { c.n = 0 }

func DefaultMetrics() []Metric {
	return []Metric{NewMaxField(), NewMinPotential(), NewMaxPotential(), NewSingularCount()}
}

// Summarize runs every metric over samples and returns name -> value.
func Summarize(samples []Sample, metrics ...Metric) map[string]float64 {
	if len(metrics) == 0 {
		metrics = DefaultMetrics()
	}
	out := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		m.Reset()
		for _, s := range samples {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
