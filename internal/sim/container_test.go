package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

var _ = Describe("Container", func() {
	var c *sim.Container

	BeforeEach(func() {
		c = sim.NewContainer(sim.PolicyKeep)
	})

	Context("before Initialize", func() {
		It("is empty", func() {
			Expect(c.Initialized()).To(BeFalse())
			Expect(c.Len()).To(Equal(0))
			_, ok := c.Engine()
			Expect(ok).To(BeFalse())
		})

		It("treats Step as a no-op", func() {
			Expect(func() { c.Step() }).NotTo(Panic())
			Expect(c.Initialized()).To(BeFalse())
		})

		It("extracts an empty buffer in either format", func() {
			Expect(c.Extract(nil, sim.FormatXYZ, 1)).To(BeEmpty())
			Expect(c.Extract(make([]float32, 8), sim.FormatXY, 1)).To(BeEmpty())
		})
	})

	Context("Initialize", func() {
		It("rejects non-positive body counts", func() {
			Expect(c.Initialize(0)).To(MatchError(physics.ErrInvalidBodyCount))
			Expect(c.Initialize(-5)).To(MatchError(physics.ErrInvalidBodyCount))
			Expect(c.Initialized()).To(BeFalse())
		})

		It("builds an engine of the requested size", func() {
			Expect(c.Initialize(200)).To(Succeed())
			Expect(c.Len()).To(Equal(200))
		})
	})

	Context("with PolicyKeep", func() {
		It("keeps the running engine on a second Initialize", func() {
			Expect(c.Initialize(10)).To(Succeed())
			c.Step()
			first, _ := c.Engine()

			Expect(c.Initialize(30)).To(Succeed())

			current, _ := c.Engine()
			Expect(current).To(BeIdenticalTo(first))
			Expect(c.Len()).To(Equal(10))
			Expect(current.Steps()).To(Equal(1))
		})

		It("still rejects an invalid count", func() {
			Expect(c.Initialize(10)).To(Succeed())
			Expect(c.Initialize(0)).To(MatchError(physics.ErrInvalidBodyCount))
			Expect(c.Len()).To(Equal(10))
		})
	})

	Context("with PolicyReplace", func() {
		BeforeEach(func() {
			c = sim.NewContainer(sim.PolicyReplace)
		})

		It("starts over on every Initialize", func() {
			Expect(c.Initialize(10)).To(Succeed())
			c.Step()
			first, _ := c.Engine()

			Expect(c.Initialize(30)).To(Succeed())

			current, _ := c.Engine()
			Expect(current).NotTo(BeIdenticalTo(first))
			Expect(c.Len()).To(Equal(30))
			Expect(current.Steps()).To(Equal(0))
		})

		It("stays empty when the engine cannot be built", func() {
			c = sim.NewContainer(sim.PolicyReplace, physics.WithDt(-1))
			Expect(c.Initialize(3)).To(MatchError(physics.ErrParameterBounds))
			Expect(c.Initialized()).To(BeFalse())
		})
	})

	Context("Reset", func() {
		It("returns the container to empty", func() {
			Expect(c.Initialize(4)).To(Succeed())
			c.Reset()
			Expect(c.Initialized()).To(BeFalse())
			Expect(c.Extract(nil, sim.FormatXYZ, 1)).To(BeEmpty())
			Expect(c.Initialize(6)).To(Succeed())
			Expect(c.Len()).To(Equal(6))
		})
	})

	Context("stepping", func() {
		It("never changes the body count or buffer length", func() {
			Expect(c.Initialize(25)).To(Succeed())
			var xyz, xy []float32
			for i := 0; i < 20; i++ {
				c.Step()
				xyz = c.Extract(xyz, sim.FormatXYZ, 1)
				xy = c.Extract(xy, sim.FormatXY, 0.01)
				Expect(c.Len()).To(Equal(25))
				Expect(xyz).To(HaveLen(3 * 25))
				Expect(xy).To(HaveLen(2 * 25))
			}
		})

		It("is deterministic for the same body count and step count", func() {
			run := func() []float32 {
				cc := sim.NewContainer(sim.PolicyReplace)
				Expect(cc.Initialize(50)).To(Succeed())
				for i := 0; i < 30; i++ {
					cc.Step()
				}
				return cc.Extract(nil, sim.FormatXYZ, 1)
			}
			Expect(run()).To(Equal(run()))
		})

		It("moves the two-body pair toward each other symmetrically", func() {
			c = sim.NewContainer(sim.PolicyKeep, physics.WithLayout(physics.Line), physics.WithG(1), physics.WithDt(0.016))
			Expect(c.Initialize(2)).To(Succeed())
			before := c.Extract(nil, sim.FormatXYZ, 1)
			Expect(before).To(Equal([]float32{-1, 0, 0, 1, 0, 0}))

			c.Step()

			e, ok := c.Engine()
			Expect(ok).To(BeTrue())
			d0 := e.Position(0).X - (-1)
			d1 := e.Position(1).X - 1
			Expect(d0).To(BeNumerically(">", 0))
			Expect(d1).To(BeNumerically("<", 0))
			Expect(math.Abs(d0)).To(BeNumerically("~", math.Abs(d1), 1e-6))
		})

		It("keeps coincident bodies finite", func() {
			c = sim.NewContainer(sim.PolicyKeep, physics.WithLayout(physics.Collapsed))
			Expect(c.Initialize(8)).To(Succeed())
			c.Step()
			for _, v := range c.Extract(nil, sim.FormatXYZ, 1) {
				Expect(math.IsNaN(float64(v))).To(BeFalse())
				Expect(math.IsInf(float64(v), 0)).To(BeFalse())
			}
		})
	})
})
