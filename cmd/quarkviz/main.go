package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/quarkviz/internal/config"
	"github.com/san-kum/quarkviz/internal/display"
	"github.com/san-kum/quarkviz/internal/lab"
	"github.com/san-kum/quarkviz/internal/viz"
)

var (
	configFile  string
	seed        int64
	displayKind string
	outDir      string
	logLevel    string
	theme       string
	interval    time.Duration
	preset      string

	size      int
	steps     int
	particles int
	sigma     float64
	csvPath   string
	runs      int
)

// main registers the commands and runs the interactive menu when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "quarkviz",
		Short:         "toy particle physics visualizations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks a new seed per run)")
	pf.StringVar(&displayKind, "display", config.DefaultDisplay, "display: terminal, window, files or none")
	pf.StringVar(&outDir, "out", "", "also write images and animations to this directory")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.DurationVar(&interval, "interval", config.DefaultInterval, "pause between animation frames")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "pick a simulation from an interactive menu",
		RunE:  runMenu,
	}

	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "pick a simulation from a plain text prompt",
		RunE:  runPrompt,
	}

	plasmaCmd := &cobra.Command{
		Use:   "plasma",
		Short: "random quark-gluon plasma grid",
		RunE:  runPlasma,
	}
	plasmaCmd.Flags().IntVar(&size, "size", config.DefaultSize, "grid size")
	plasmaCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	neutrinoCmd := &cobra.Command{
		Use:   "neutrino",
		Short: "neutrino random walk on a lattice",
		RunE:  runNeutrino,
	}
	neutrinoCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	neutrinoCmd.Flags().StringVar(&csvPath, "csv", "", "also write the path to this csv file")
	neutrinoCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	darkCmd := &cobra.Command{
		Use:   "darkmatter",
		Short: "animated dark matter particle field",
		RunE:  runDarkMatter,
	}
	darkCmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "number of particles")
	darkCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of frames")
	darkCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "displacement scale per step")
	darkCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run many neutrino walks and plot the mean squared displacement",
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 100, "number of walks")
	ensembleCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "steps per walk")

	presetsCmd := &cobra.Command{
		Use:   "presets [simulation]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(menuCmd, promptCmd, plasmaCmd, neutrinoCmd, darkCmd, ensembleCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env is what every command needs to run a simulation.
type env struct {
	cfg    *config.Config
	runner *lab.Runner
	logger *log.Logger
}

// setup loads the config, applies changed flags on top of it and builds
// the runner. simulation is the preset namespace, empty for selectors.
func setup(cmd *cobra.Command, simulation string) (*env, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" && simulation != "" {
		p, ok := config.GetPreset(simulation, preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(simulation))
		}
		p.Apply(simulation, cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("display") {
		cfg.Display = displayKind
	}
	if flags.Changed("out") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("size") {
		cfg.Plasma.Size = size
	}
	if flags.Changed("steps") {
		cfg.Neutrino.Steps = steps
		cfg.DarkMatter.Steps = steps
	}
	if flags.Changed("particles") {
		cfg.DarkMatter.Particles = particles
	}
	if flags.Changed("sigma") {
		cfg.DarkMatter.Sigma = sigma
	}

	logger := log.New()
	logger.SetOutput(os.Stderr)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	open, err := display.NewOpener(display.Options{
		Kind:      display.Kind(cfg.Display),
		OutputDir: cfg.OutputDir,
		Interval:  cfg.Interval,
		Theme:     cfg.Theme,
		CSVPath:   csvPath,
	})
	if err != nil {
		return nil, err
	}

	runner := lab.NewRunner(open, cfg.Seed, log.NewEntry(logger))
	if err := runner.Configure(cfg); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"display": cfg.Display,
		"out":     cfg.OutputDir,
		"seed":    cfg.Seed,
	}).Debug("configured")
	return &env{cfg: cfg, runner: runner, logger: logger}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runMenu(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "")
	if err != nil {
		return err
	}
	reg := lab.NewRegistry(e.cfg)

	sel, err := viz.RunMenu(reg.MenuEntries(), viz.GetTheme(e.cfg.Theme))
	if err != nil {
		return err
	}
	if !sel.Chosen {
		return nil
	}

	ctx, cancel := signalContext()
	defer cancel()
	return reg.Run(ctx, e.runner, sel)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return lab.Prompt{In: os.Stdin, Out: os.Stdout}.Run(ctx, e.runner)
}

func runPlasma(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "plasma")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return e.runner.GenerateAndDisplayPlasma(ctx, e.cfg.Plasma.Size)
}

func runNeutrino(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "neutrino")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return e.runner.RunNeutrinoWalk(ctx, e.cfg.Neutrino.Steps)
}

func runDarkMatter(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "darkmatter")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return e.runner.RunDarkMatterField(ctx, e.cfg.DarkMatter.Particles, e.cfg.DarkMatter.Steps)
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, "neutrino")
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	paths, err := e.runner.WalkEnsemble(ctx, runs, e.cfg.Neutrino.Steps)
	if err != nil {
		return err
	}
	curve := lab.MSDCurve(paths)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUNS\tSTEPS\tFINAL MSD\tMSD/STEP")
	final := curve[len(curve)-1]
	perStep := 0.0
	if len(curve) > 1 {
		perStep = final / float64(len(curve)-1)
	}
	fmt.Fprintf(w, "%d\t%d\t%.2f\t%.3f\n", len(paths), len(curve)-1, final, perStep)
	w.Flush()
	fmt.Println()

	if len(curve) > 1 {
		graph := asciigraph.Plot(curve,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("mean squared displacement"),
		)
		fmt.Println(graph)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	sims := []string{"plasma", "neutrino", "darkmatter"}
	if len(args) == 1 {
		sims = args
	}
	for _, sim := range sims {
		presets := config.ListPresets(sim)
		if len(presets) == 0 {
			fmt.Printf("no presets for simulation: %s\n", sim)
			continue
		}
		fmt.Printf("presets for %s:\n", sim)
		for _, name := range presets {
			p, _ := config.GetPreset(sim, name)
			fmt.Printf("  %-10s %s\n", name, describePreset(sim, p))
		}
	}
	return nil
}

func describePreset(sim string, p config.Preset) string {
	switch sim {
	case "plasma":
		return fmt.Sprintf("size=%d", p.Size)
	case "neutrino":
		return fmt.Sprintf("steps=%d", p.Steps)
	default:
		return fmt.Sprintf("particles=%d steps=%d sigma=%g", p.Particles, p.Steps, p.Sigma)
	}
}
