package lab_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/san-kum/quarkviz/internal/config"
	"github.com/san-kum/quarkviz/internal/display"
	"github.com/san-kum/quarkviz/internal/lab"
	"github.com/san-kum/quarkviz/internal/quantum"
	"github.com/san-kum/quarkviz/internal/viz"
)

// recorders hands out a new Recorder per opened display.
type recorders struct {
	opened []*display.Recorder
}

func (rs *recorders) open() (display.Display, error) {
	r := &display.Recorder{}
	rs.opened = append(rs.opened, r)
	return r, nil
}

func (rs *recorders) last() *display.Recorder {
	return rs.opened[len(rs.opened)-1]
}

func quietLogger() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

var _ = Describe("Runner", func() {
	var (
		rs     *recorders
		runner *lab.Runner
		ctx    context.Context
	)

	BeforeEach(func() {
		rs = &recorders{}
		runner = lab.NewRunner(rs.open, 42, quietLogger())
		ctx = context.Background()
	})

	Describe("GenerateAndDisplayPlasma", func() {
		It("shows one size×size grid and closes the display", func() {
			Expect(runner.GenerateAndDisplayPlasma(ctx, 8)).To(Succeed())

			Expect(rs.opened).To(HaveLen(1))
			rec := rs.last()
			Expect(rec.Grids).To(HaveLen(1))
			Expect(rec.Grids[0].Size()).To(Equal(8))
			Expect(rec.Closed).To(BeTrue())
		})

		It("accepts a single cell grid", func() {
			Expect(runner.GenerateAndDisplayPlasma(ctx, 1)).To(Succeed())
			Expect(rs.last().Grids[0].Size()).To(Equal(1))
		})

		It("rejects a non-positive size without opening a display", func() {
			err := runner.GenerateAndDisplayPlasma(ctx, 0)
			Expect(errors.Is(err, quantum.ErrInvalidSize)).To(BeTrue())

			var pe *quantum.ParamError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Name).To(Equal("size"))
			Expect(rs.opened).To(BeEmpty())
		})

		It("reproduces a grid for the same seed", func() {
			other := lab.NewRunner(rs.open, 42, quietLogger())
			Expect(runner.GenerateAndDisplayPlasma(ctx, 6)).To(Succeed())
			Expect(other.GenerateAndDisplayPlasma(ctx, 6)).To(Succeed())

			Expect(rs.opened[0].Grids[0].Rows()).To(Equal(rs.opened[1].Grids[0].Rows()))
		})
	})

	Describe("RunNeutrinoWalk", func() {
		It("shows a path of steps+1 points from the origin", func() {
			Expect(runner.RunNeutrinoWalk(ctx, 25)).To(Succeed())

			p := rs.last().Paths[0]
			Expect(p.Len()).To(Equal(26))
			Expect(p.X[0]).To(Equal(0))
			Expect(p.Y[0]).To(Equal(0))
		})

		It("treats zero steps as a single point", func() {
			Expect(runner.RunNeutrinoWalk(ctx, 0)).To(Succeed())
			Expect(rs.last().Paths[0].Len()).To(Equal(1))
		})

		It("rejects negative steps", func() {
			err := runner.RunNeutrinoWalk(ctx, -1)
			Expect(errors.Is(err, quantum.ErrNegativeSteps)).To(BeTrue())
			Expect(rs.opened).To(BeEmpty())
		})
	})

	Describe("RunDarkMatterField", func() {
		It("animates exactly steps frames inside the box", func() {
			Expect(runner.RunDarkMatterField(ctx, 20, 15)).To(Succeed())

			rec := rs.last()
			Expect(rec.Frames).To(HaveLen(1))
			frames := rec.Frames[0]
			Expect(frames).To(HaveLen(15))
			for _, fr := range frames {
				Expect(fr.Field.Positions).To(HaveLen(20))
				Expect(fr.Field.InBounds()).To(BeTrue())
			}
			Expect(rec.Closed).To(BeTrue())
		})

		It("runs with no particles", func() {
			Expect(runner.RunDarkMatterField(ctx, 0, 3)).To(Succeed())
			frames := rs.last().Frames[0]
			Expect(frames).To(HaveLen(3))
			Expect(frames[0].Field.Positions).To(BeEmpty())
		})

		It("rejects negative counts", func() {
			Expect(errors.Is(runner.RunDarkMatterField(ctx, -2, 3), quantum.ErrNegativeParticles)).To(BeTrue())
			Expect(errors.Is(runner.RunDarkMatterField(ctx, 2, -3), quantum.ErrNegativeSteps)).To(BeTrue())
			Expect(rs.opened).To(BeEmpty())
		})

		It("stops when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			err := runner.RunDarkMatterField(cctx, 5, 10)
			Expect(err).To(MatchError(context.Canceled))
			Expect(rs.last().Closed).To(BeTrue())
		})
	})

	It("reports a display that fails to open", func() {
		boom := errors.New("no display")
		r := lab.NewRunner(func() (display.Display, error) { return nil, boom }, 1, quietLogger())
		Expect(r.RunNeutrinoWalk(ctx, 3)).To(MatchError(boom))
	})
})

var _ = Describe("Configure", func() {
	var runner *lab.Runner

	BeforeEach(func() {
		runner = lab.NewRunner((&recorders{}).open, 1, quietLogger())
	})

	It("applies configured tunables to the generators", func() {
		cfg := config.DefaultConfig()
		cfg.DarkMatter.Sigma = 2
		cfg.Plasma.Quark = 1
		cfg.Plasma.Gluon = 0
		cfg.Plasma.Empty = 0

		Expect(runner.Configure(cfg)).To(Succeed())
		Expect(runner.DarkMatter.GetParams()).To(HaveKeyWithValue("sigma", 2.0))
		Expect(runner.Plasma.GetParams()).To(HaveKeyWithValue("quark", 1.0))
	})

	DescribeTable("rejects non-finite tunables",
		func(edit func(*config.Config)) {
			cfg := config.DefaultConfig()
			edit(cfg)
			err := runner.Configure(cfg)
			Expect(errors.Is(err, quantum.ErrParameterBounds)).To(BeTrue())
		},
		Entry("NaN sigma", func(c *config.Config) { c.DarkMatter.Sigma = math.NaN() }),
		Entry("infinite sigma", func(c *config.Config) { c.DarkMatter.Sigma = math.Inf(1) }),
		Entry("NaN extent", func(c *config.Config) { c.DarkMatter.Extent = math.NaN() }),
		Entry("NaN quark weight", func(c *config.Config) { c.Plasma.Quark = math.NaN() }),
		Entry("infinite gluon weight", func(c *config.Config) { c.Plasma.Gluon = math.Inf(1) }),
	)

	It("keeps every frame in the box after configuring", func() {
		rs := &recorders{}
		r := lab.NewRunner(rs.open, 8, quietLogger())
		cfg := config.DefaultConfig()
		cfg.DarkMatter.Sigma = 40

		Expect(r.Configure(cfg)).To(Succeed())
		Expect(r.RunDarkMatterField(context.Background(), 30, 20)).To(Succeed())
		for _, fr := range rs.last().Frames[0] {
			Expect(fr.Field.InBounds()).To(BeTrue())
		}
	})
})

var _ = Describe("Registry", func() {
	var reg *lab.Registry

	BeforeEach(func() {
		reg = lab.NewRegistry(config.DefaultConfig())
	})

	It("lists the three simulations in key order", func() {
		sims := reg.List()
		Expect(sims).To(HaveLen(3))
		Expect(sims[0].Name).To(Equal("plasma"))
		Expect(sims[1].Name).To(Equal("neutrino"))
		Expect(sims[2].Name).To(Equal("darkmatter"))
	})

	It("finds simulations by key and by name", func() {
		s, err := reg.Get("3")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Params).To(Equal([]string{"particles", "steps"}))

		s, err = reg.Get("neutrino")
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Key).To(Equal("2"))

		_, err = reg.Get("4")
		Expect(errors.Is(err, quantum.ErrUnknownSimulation)).To(BeTrue())
	})

	It("builds menu entries with configured defaults", func() {
		entries := reg.MenuEntries()
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Params).To(Equal([]viz.MenuParam{{Name: "size", Default: 100}}))
		Expect(entries[2].Title).To(Equal("Dark Matter Interaction Simulation"))
	})

	It("runs a menu selection, filling unset parameters from defaults", func() {
		rs := &recorders{}
		runner := lab.NewRunner(rs.open, 3, quietLogger())
		sel := viz.Selection{Key: "3", Params: map[string]int{"steps": 4}, Chosen: true}

		Expect(reg.Run(context.Background(), runner, sel)).To(Succeed())
		frames := rs.last().Frames[0]
		Expect(frames).To(HaveLen(4))
		Expect(frames[0].Field.Positions).To(HaveLen(config.DefaultParticles))
	})
})

var _ = Describe("Prompt", func() {
	var (
		rs     *recorders
		runner *lab.Runner
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		rs = &recorders{}
		runner = lab.NewRunner(rs.open, 9, quietLogger())
		out = &bytes.Buffer{}
	})

	run := func(input string) error {
		return lab.Prompt{In: strings.NewReader(input), Out: out}.Run(context.Background(), runner)
	}

	It("prints the menu", func() {
		Expect(run("1\n")).To(Succeed())
		Expect(out.String()).To(HavePrefix("Select a simulation to run:\n1: Quark-Gluon Plasma Simulation\n"))
		Expect(out.String()).To(ContainSubstring("Enter 1, 2, or 3: "))
	})

	It("runs plasma at the fixed size", func() {
		Expect(run("1\n")).To(Succeed())
		Expect(rs.last().Grids[0].Size()).To(Equal(lab.PlasmaPromptSize))
	})

	It("asks for steps for the neutrino walk", func() {
		Expect(run("2\n12\n")).To(Succeed())
		Expect(rs.last().Paths[0].Len()).To(Equal(13))
	})

	It("asks for particles then steps for dark matter", func() {
		Expect(run("3\n7\n2\n")).To(Succeed())
		frames := rs.last().Frames[0]
		Expect(frames).To(HaveLen(2))
		Expect(frames[0].Field.Positions).To(HaveLen(7))
	})

	It("reports an invalid choice and returns normally", func() {
		Expect(run("9\n")).To(Succeed())
		Expect(out.String()).To(HaveSuffix("Invalid choice. Please enter 1, 2, or 3.\n"))
		Expect(rs.opened).To(BeEmpty())
	})

	It("fails on non-integer input", func() {
		Expect(run("2\nmany\n")).To(MatchError(ContainSubstring("invalid number")))
		Expect(rs.opened).To(BeEmpty())
	})
})

var _ = Describe("WalkEnsemble", func() {
	var runner *lab.Runner

	BeforeEach(func() {
		runner = lab.NewRunner((&recorders{}).open, 100, quietLogger())
	})

	It("runs independent walks seeded from the base", func() {
		paths, err := runner.WalkEnsemble(context.Background(), 8, 30)
		Expect(err).NotTo(HaveOccurred())
		Expect(paths).To(HaveLen(8))
		for _, p := range paths {
			Expect(p.Len()).To(Equal(31))
		}

		single, err := runner.Neutrino.Simulate(30, quantum.NewRand(103))
		Expect(err).NotTo(HaveOccurred())
		Expect(paths[3].X).To(Equal(single.X))
		Expect(paths[3].Y).To(Equal(single.Y))
	})

	It("logs the final mean squared displacement of the whole ensemble", func() {
		logger, hook := test.NewNullLogger()
		logger.SetLevel(log.DebugLevel)
		r := lab.NewRunner((&recorders{}).open, 100, log.NewEntry(logger))

		paths, err := r.WalkEnsemble(context.Background(), 6, 40)
		Expect(err).NotTo(HaveOccurred())

		curve := lab.MSDCurve(paths)
		entry := hook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Message).To(Equal("ensemble finished"))
		Expect(entry.Data["msd"]).To(Equal(curve[len(curve)-1]))
	})

	It("rejects bad run and step counts", func() {
		_, err := runner.WalkEnsemble(context.Background(), 0, 10)
		Expect(errors.Is(err, quantum.ErrParameterBounds)).To(BeTrue())

		_, err = runner.WalkEnsemble(context.Background(), 2, -1)
		Expect(errors.Is(err, quantum.ErrNegativeSteps)).To(BeTrue())
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.WalkEnsemble(ctx, 4, 10)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("averages squared displacement per step", func() {
		a := quantum.NewPath(2)
		a.Append(1, 0)
		a.Append(1, 0)
		b := quantum.NewPath(2)
		b.Append(0, -1)
		b.Append(-1, 0)

		Expect(lab.MSDCurve([]quantum.Path{a, b})).To(Equal([]float64{0, 1, 3}))
		Expect(lab.MSDCurve(nil)).To(BeNil())
	})
})
