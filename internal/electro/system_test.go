package electro_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/vecmath"
)

var _ = Describe("System", func() {
	var (
		c1, c2 electro.Charge
		sys    *electro.System
		mid    vecmath.Vector
	)

	BeforeEach(func() {
		c1 = electro.NewAt(1e-6, vecmath.Zero)
		c2 = electro.NewAt(-1e-6, vecmath.Vec(1, 0, 0))
		sys = electro.NewSystem(c1, c2)
		mid = vecmath.Vec(0.5, 0, 0)
	})

	It("superposes field contributions", func() {
		e1, err := electro.EFieldIntensity(c1, mid)
		Expect(err).NotTo(HaveOccurred())
		e2, err := electro.EFieldIntensity(c2, mid)
		Expect(err).NotTo(HaveOccurred())

		total, err := sys.FieldAt(mid)
		Expect(err).NotTo(HaveOccurred())
		Expect(total.ApproxEqualRel(e1.Add(e2), 1e-12)).To(BeTrue())

		// both contributions point from + toward -
		Expect(total.X()).To(BeNumerically("~", 8*electro.K*1e-6, 1e-3))
		Expect(total.Y()).To(BeZero())
	})

	It("superposes potentials", func() {
		v, err := sys.PotentialAt(mid)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 0, 1e-9))

		r := vecmath.Vec(0, 2, 0)
		v1, _ := c1.PotentialAt(r)
		v2, _ := c2.PotentialAt(r)
		v, err = sys.PotentialAt(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", v1+v2, 1e-9))
	})

	It("sums contributions in any order", func() {
		c3 := electro.NewAt(2.5e-6, vecmath.Vec(0, 1, -1))
		r := vecmath.Vec(0.3, -0.7, 0.2)

		a, err := electro.NewSystem(c1, c2, c3).FieldAt(r)
		Expect(err).NotTo(HaveOccurred())
		b, err := electro.NewSystem(c3, c2, c1).FieldAt(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ApproxEqualRel(b, 1e-12)).To(BeTrue())
	})

	It("fails the whole evaluation at a charge location", func() {
		_, err := sys.FieldAt(c2.Location())
		Expect(err).To(MatchError(electro.ErrDomain))
		_, err = sys.PotentialAt(c1.Location())
		Expect(err).To(MatchError(electro.ErrDomain))
	})

	It("computes net forces that cancel overall", func() {
		sys.Add(electro.NewAt(3e-6, vecmath.Vec(0, 2, 0)))

		forces, err := sys.Forces()
		Expect(err).NotTo(HaveOccurred())
		Expect(forces).To(HaveLen(3))

		net := vecmath.Zero
		for _, f := range forces {
			net = net.Add(f)
		}
		Expect(net.Norm()).To(BeNumerically("<", 1e-9*forces[0].Norm()))

		_, err = sys.ForceOn(3)
		Expect(err).To(HaveOccurred())
	})

	It("reports net charge and dipole moment", func() {
		Expect(sys.TotalCharge()).To(BeZero())
		Expect(sys.DipoleMoment()).To(Equal(vecmath.Vec(-1e-6, 0, 0)))
		Expect(sys.Len()).To(Equal(2))
		Expect(sys.Charges()).To(Equal([]electro.Charge{c1, c2}))
	})
})

var _ = Describe("Softened", func() {
	It("requires a positive softening length", func() {
		_, err := electro.NewSoftened(0)
		Expect(err).To(MatchError(electro.ErrValidation))
		_, err = electro.NewSoftened(-1)
		Expect(err).To(MatchError(electro.ErrValidation))
	})

	It("stays finite at a charge location", func() {
		soft, err := electro.NewSoftened(1e-2)
		Expect(err).NotTo(HaveOccurred())
		c := electro.NewAt(1e-6, vecmath.Zero)

		Expect(soft.EFieldIntensity(c, vecmath.Zero)).To(Equal(vecmath.Zero))
		Expect(soft.PotentialAt(c, vecmath.Zero)).To(BeNumerically("~", electro.K*1e-6/1e-2, 1e-3))
	})

	It("converges to the exact kernel far from the charges", func() {
		soft, err := electro.NewSoftened(1e-3)
		Expect(err).NotTo(HaveOccurred())
		sys := electro.NewSystem(electro.NewAt(1e-6, vecmath.Zero), electro.NewAt(-2e-6, vecmath.Vec(1, 0, 0)))
		r := vecmath.Vec(100, 50, 0)

		exact, err := sys.FieldAt(r)
		Expect(err).NotTo(HaveOccurred())
		approx, err := soft.Bind(sys).FieldAt(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(approx.ApproxEqualRel(exact, 1e-6)).To(BeTrue())

		a := electro.NewAt(1, vecmath.Zero)
		b := electro.NewAt(1, vecmath.Vec(10, 0, 0))
		f, err := electro.ForceOn(a, b)
		Expect(err).NotTo(HaveOccurred())
		Expect(soft.ForceOn(a, b).ApproxEqualRel(f, 1e-6)).To(BeTrue())
	})

	It("computes finite net forces for coincident charges", func() {
		soft, err := electro.NewSoftened(1e-2)
		Expect(err).NotTo(HaveOccurred())
		sys := electro.NewSystem(
			electro.NewAt(1e-6, vecmath.Zero),
			electro.NewAt(2e-6, vecmath.Zero),
			electro.NewAt(-1e-6, vecmath.Vec(1, 0, 0)),
		)
		_, err = sys.Forces()
		Expect(err).To(MatchError(electro.ErrDomain))

		forces := soft.ForcesOf(sys)
		Expect(forces).To(HaveLen(3))
		net := vecmath.Zero
		for _, f := range forces {
			Expect(f.IsValid()).To(BeTrue())
			net = net.Add(f)
		}
		Expect(net.Norm()).To(BeNumerically("<", 1e-9*forces[2].Norm()))
		Expect(forces[2].X()).To(BeNumerically("<", 0))
	})
})
