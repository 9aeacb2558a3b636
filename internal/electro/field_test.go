package electro_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/vecmath"
)

var _ = Describe("Charge", func() {
	It("rejects locations without exactly three components", func() {
		for _, loc := range [][]float64{{1, 2}, {}, {1, 2, 3, 4}} {
			_, err := electro.New(1, loc)
			Expect(err).To(MatchError(electro.ErrValidation))
		}
	})

	It("builds from a three element slice", func() {
		c, err := electro.New(-2e-9, []float64{1, 2, 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Magnitude()).To(Equal(-2e-9))
		Expect(c.Coulomb()).To(Equal(c.Magnitude()))
		Expect(c.Location()).To(Equal(vecmath.Vec(1, 2, 3)))
		Expect(c.Point().Vector()).To(Equal(c.Location()))
		Expect(c.Sign()).To(Equal(-1))
	})

	It("replaces fields as whole values", func() {
		c := electro.NewAtPoint(1, vecmath.Pt(0, 0, 1))
		c.SetCoulomb(3)
		Expect(c.Magnitude()).To(Equal(3.0))

		Expect(c.SetLocationSlice([]float64{5, 5})).To(MatchError(electro.ErrValidation))
		Expect(c.Location()).To(Equal(vecmath.Vec(0, 0, 1)))

		Expect(c.SetLocationSlice([]float64{5, 5, 5})).To(Succeed())
		Expect(c.Location()).To(Equal(vecmath.Vec(5, 5, 5)))
	})

	It("copies independently", func() {
		a := electro.NewAt(1, vecmath.Vec(1, 1, 1))
		b := a
		b.SetLocation(vecmath.Vec(2, 2, 2))
		b.SetMagnitude(-1)
		Expect(a.Location()).To(Equal(vecmath.Vec(1, 1, 1)))
		Expect(a.Magnitude()).To(Equal(1.0))
	})
})

var _ = Describe("ForceOn", func() {
	origin := electro.NewAt(1, vecmath.Zero)

	It("matches Coulomb's constant for 1 C charges 1 m apart", func() {
		other := electro.NewAt(1, vecmath.Vec(1, 0, 0))
		f, err := electro.ForceOn(origin, other)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Norm()).To(BeNumerically("~", electro.K, electro.K*1e-12))
		Expect(f.Norm()).To(BeNumerically("~", 8.9875e9, 1e6))
	})

	It("repels like charges and attracts opposite ones", func() {
		q := electro.NewAt(1e-6, vecmath.Zero)
		test := electro.NewAt(1e-6, vecmath.Vec(1, 0, 0))

		f, err := electro.ForceOn(q, test)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.X()).To(BeNumerically(">", 0))
		Expect(f.Y()).To(BeZero())
		Expect(f.Z()).To(BeZero())

		test.SetMagnitude(-1e-6)
		f, err = q.ForceOn(test)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.X()).To(BeNumerically("<", 0))
	})

	DescribeTable("obeys Newton's third law",
		func(a, b electro.Charge) {
			fab, err := electro.ForceOn(a, b)
			Expect(err).NotTo(HaveOccurred())
			fba, err := electro.ForceOn(b, a)
			Expect(err).NotTo(HaveOccurred())
			Expect(fab.ApproxEqualRel(fba.Neg(), 1e-9)).To(BeTrue(), "%v vs %v", fab, fba)
		},
		Entry("unit charges on x", electro.NewAt(1, vecmath.Zero), electro.NewAt(1, vecmath.Vec(1, 0, 0))),
		Entry("opposite charges off-axis", electro.NewAt(3e-6, vecmath.Vec(1, -2, 0.5)), electro.NewAt(-7e-6, vecmath.Vec(-4, 3, 2))),
		Entry("neutral partner", electro.NewAt(0, vecmath.Vec(0, 0, 1)), electro.NewAt(5, vecmath.Vec(0, 0, -1))),
		Entry("close charges", electro.NewAt(1e-9, vecmath.Vec(1e-3, 0, 0)), electro.NewAt(2e-9, vecmath.Vec(0, 1e-3, 0))),
	)

	It("fails on coincident charges", func() {
		_, err := electro.ForceOn(origin, origin)
		Expect(err).To(MatchError(electro.ErrDomain))

		var kerr *electro.Error
		Expect(errors.As(err, &kerr)).To(BeTrue())
		Expect(kerr.Op).To(Equal("force"))
	})
})

var _ = Describe("EFieldIntensity", func() {
	It("falls off with the inverse square of distance", func() {
		q := electro.NewAt(2e-6, vecmath.Zero)
		r := vecmath.Vec(1, 2, 2)

		near, err := electro.EFieldIntensity(q, r)
		Expect(err).NotTo(HaveOccurred())
		far, err := electro.EFieldIntensity(q, r.Scale(2))
		Expect(err).NotTo(HaveOccurred())

		Expect(near.Norm()).To(BeNumerically("~", electro.K*2e-6/9, 1e-9*near.Norm()))
		Expect(far.Norm() / near.Norm()).To(BeNumerically("~", 0.25, 1e-12))
	})

	It("points away from positive and toward negative charges", func() {
		r := vecmath.Vec(0, 3, 0)

		e, err := electro.EFieldIntensity(electro.NewAt(1e-6, vecmath.Zero), r)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Y()).To(BeNumerically(">", 0))

		e, err = electro.NewAt(-1e-6, vecmath.Zero).EFieldIntensity(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Y()).To(BeNumerically("<", 0))
	})

	It("is consistent with the force on a test charge", func() {
		src := electro.NewAt(4e-6, vecmath.Vec(1, 1, 1))
		test := electro.NewAt(2e-6, vecmath.Vec(-1, 0, 2))

		e, err := electro.EFieldIntensity(src, test.Location())
		Expect(err).NotTo(HaveOccurred())
		f, err := electro.ForceOn(src, test)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Scale(test.Magnitude()).ApproxEqualRel(f, 1e-12)).To(BeTrue())
	})

	It("fails at the charge's own location", func() {
		c := electro.NewAt(1, vecmath.Vec(1, 2, 3))
		_, err := electro.EFieldIntensity(c, vecmath.Vec(1, 2, 3))
		Expect(err).To(MatchError(electro.ErrDomain))
	})
})

var _ = Describe("PotentialAt", func() {
	It("is K·q/d", func() {
		c := electro.NewAt(-3e-9, vecmath.Vec(0, 0, 2))
		v, err := electro.PotentialAt(c, vecmath.Vec(0, 0, -2))
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", electro.K*-3e-9/4, 1e-12))
	})

	It("is singular at the charge's own location", func() {
		c := electro.NewAt(1, vecmath.Zero)
		v, err := c.PotentialAt(vecmath.Zero)
		Expect(err).To(MatchError(electro.ErrDomain))
		Expect(math.IsNaN(v)).To(BeFalse())
	})
})
