package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/coulomb/internal/config"
	"github.com/san-kum/coulomb/internal/electro"
	"github.com/san-kum/coulomb/internal/export"
	"github.com/san-kum/coulomb/internal/sampling"
	"github.com/san-kum/coulomb/internal/storage"
	"github.com/san-kum/coulomb/internal/tui"
	"github.com/san-kum/coulomb/internal/vecmath"
	"github.com/san-kum/coulomb/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	softening  float64
	// pairwise force
	q1, q2   float64
	at1, at2 []float64
	// observation point
	at []float64
	// rendering
	render        bool
	mapWidth      int
	mapHeight     int
	profileWidth  int
	profileHeight int
	svgWidth      int
	svgHeight     int
	quantity      string
	outFile       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the coulomb commands. Each command that sizes its
// output binds its own width and height so the defaults stay independent.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "coulomb",
		Short:         "point charge electrostatics toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".coulomb", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset scenario")
	rootCmd.PersistentFlags().Float64Var(&softening, "softening", 0, "softening length (0 = exact kernel)")

	forceCmd := &cobra.Command{
		Use:   "force",
		Short: "Coulomb force between two charges, or net force on every scenario charge",
		RunE:  runForce,
	}
	forceCmd.Flags().Float64Var(&q1, "q1", 1, "source charge (C)")
	forceCmd.Flags().Float64Var(&q2, "q2", 1, "target charge (C)")
	forceCmd.Flags().Float64SliceVar(&at1, "at1", []float64{0, 0, 0}, "source location x,y,z")
	forceCmd.Flags().Float64SliceVar(&at2, "at2", []float64{1, 0, 0}, "target location x,y,z")

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "scalar potential of the scenario at a point",
		RunE:  runPotential,
	}
	potentialCmd.Flags().Float64SliceVar(&at, "at", nil, "observation point x,y,z (default: scenario probe)")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "electric field intensity of the scenario at a point",
		RunE:  runField,
	}
	fieldCmd.Flags().Float64SliceVar(&at, "at", nil, "observation point x,y,z (default: scenario probe)")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "describe the scenario charges",
		RunE:  runInfo,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample the field over the scenario grid and store the run",
		RunE:  runSample,
	}
	sampleCmd.Flags().BoolVar(&render, "render", false, "print the field map")
	sampleCmd.Flags().IntVar(&mapWidth, "width", 60, "map width (cells)")
	sampleCmd.Flags().IntVar(&mapHeight, "height", 20, "map height (cells)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot potential or field magnitude along the scenario line",
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&quantity, "quantity", viz.QuantityPotential, "potential or field")
	profileCmd.Flags().IntVar(&profileWidth, "width", 80, "plot width")
	profileCmd.Flags().IntVar(&profileHeight, "height", 12, "plot height")
	profileCmd.Flags().StringVar(&outFile, "out", "", "also write the profile as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "render a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&mapWidth, "width", 60, "map width (cells)")
	showCmd.Flags().IntVar(&mapHeight, "height", 20, "map height (cells)")

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a stored run as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&outFile, "out", "", "output file (default: <run_id>.svg)")
	svgCmd.Flags().IntVar(&svgWidth, "width", 600, "image width (px)")
	svgCmd.Flags().IntVar(&svgHeight, "height", 600, "image height (px)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %-12s %d charges\n", p, len(config.Presets[p].Charges))
			}
			return nil
		},
	}

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "interactive field probe",
		RunE:  runProbe,
	}

	rootCmd.AddCommand(forceCmd, potentialCmd, fieldCmd, infoCmd, sampleCmd, profileCmd, listCmd, showCmd, svgCmd, presetsCmd, probeCmd)
	return rootCmd
}

// loadScenario resolves the scenario from --config, then --preset, then the
// default dipole. --softening overrides the file value when given.
func loadScenario(cmd *cobra.Command) (*config.Scenario, error) {
	var cfg *config.Scenario
	switch {
	case configFile != "":
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultScenario()
	}

	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func observationPoint(cfg *config.Scenario) (vecmath.Vector, error) {
	if len(at) == 0 {
		return cfg.ProbePoint(), nil
	}
	r, err := vecmath.FromSlice(at)
	if err != nil {
		return vecmath.Zero, fmt.Errorf("--at: %w", err)
	}
	return r, nil
}

func runForce(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	pairwise := false
	for _, name := range []string{"q1", "q2", "at1", "at2"} {
		pairwise = pairwise || cmd.Flags().Changed(name)
	}

	if pairwise {
		a, err := electro.New(q1, at1)
		if err != nil {
			return fmt.Errorf("--at1: %w", err)
		}
		b, err := electro.New(q2, at2)
		if err != nil {
			return fmt.Errorf("--at2: %w", err)
		}
		f, err := electro.ForceOn(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "force on %v by %v:\n", b, a)
		fmt.Fprintf(out, "  F   = %v N\n", f)
		fmt.Fprintf(out, "  |F| = %.6g N\n", f.Norm())
		return nil
	}

	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	sys, forces, err := cfg.Forces()
	if err != nil {
		return err
	}

	if cfg.Softening > 0 {
		fmt.Fprintf(out, "softening: %g m\n", cfg.Softening)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tq (C)\tlocation\tnet force (N)\t|F| (N)")
	for i, f := range forces {
		c := sys.At(i)
		fmt.Fprintf(w, "%d\t%g\t%v\t%v\t%.6g\n", i, c.Magnitude(), c.Location(), f, f.Norm())
	}
	return w.Flush()
}

func runPotential(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, _, err := cfg.Source()
	if err != nil {
		return err
	}
	r, err := observationPoint(cfg)
	if err != nil {
		return err
	}
	v, err := src.PotentialAt(r)
	if err != nil {
		return err
	}
	fmt.Printf("V%v = %.6g V\n", r, v)
	return nil
}

func runField(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, _, err := cfg.Source()
	if err != nil {
		return err
	}
	r, err := observationPoint(cfg)
	if err != nil {
		return err
	}
	e, err := src.FieldAt(r)
	if err != nil {
		return err
	}
	fmt.Printf("E%v = %v V/m\n", r, e)
	fmt.Printf("|E| = %.6g V/m\n", e.Norm())
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", cfg.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tq (C)\tlocation")
	for i, c := range sys.Charges() {
		fmt.Fprintf(w, "%d\t%g\t%v\n", i, c.Magnitude(), c.Location())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("total charge:  %g C\n", sys.TotalCharge())
	fmt.Printf("dipole moment: %v C·m\n", sys.DipoleMoment())
	if cfg.Softening > 0 {
		fmt.Printf("softening:     %g m\n", cfg.Softening)
	}
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, sys, err := cfg.Source()
	if err != nil {
		return err
	}

	g := cfg.Grid.Grid()
	fm, err := sampling.SampleGrid(src, g)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Name, cfg.Softening, sys, fm)
	if err != nil {
		return err
	}

	fmt.Printf("sampled %d points on %s grid %dx%d\n", len(fm.Samples), g.Plane, g.Nx, g.Ny)
	fmt.Printf("run id: %s\n", runID)
	printMetrics(sampling.Summarize(fm.Samples))

	if render {
		fmt.Println()
		fmt.Println(viz.NewFieldRenderer(mapWidth, mapHeight).Render(fm, sys.Charges()))
	}
	return nil
}

func printMetrics(m map[string]float64) {
	fmt.Println("\nmetrics:")
	for _, name := range []string{"max_field", "min_potential", "max_potential", "singular_points"} {
		if v, ok := m[name]; ok {
			fmt.Printf("  %s: %.6g\n", name, v)
		}
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
	if quantity != viz.QuantityPotential && quantity != viz.QuantityField {
		return fmt.Errorf("unknown quantity: %s (want %s or %s)", quantity, viz.QuantityPotential, viz.QuantityField)
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, _, err := cfg.Source()
	if err != nil {
		return err
	}

	l := cfg.Line.Line()
	p, err := sampling.SampleLine(src, l)
	if err != nil {
		return err
	}

	singular := 0
	for _, pt := range p.Points {
		if pt.Singular() {
			singular++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s from %v to %v (%d points, %d singular)\n\n", quantity, l.From, l.To, l.N, singular)
	graph := viz.PlotProfile(p, quantity, profileWidth, profileHeight)
	if graph == "" {
		fmt.Fprintln(out, "nothing to plot")
	} else {
		fmt.Fprintln(out, graph)
	}

	if outFile != "" {
		svg := export.ProfileToSVG(p, 800, 400, "#1f77b4")
		if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nwrote %s\n", outFile)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tCHARGES\tGRID\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s %dx%d\t%s\n",
			run.ID,
			run.Scenario,
			len(run.Charges),
			run.Plane, run.Nx, run.Ny,
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	fm, meta, err := st.LoadFieldMap(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s)\n", meta.ID, meta.Scenario)
	printMetrics(meta.Metrics)
	fmt.Println()
	fmt.Println(viz.NewFieldRenderer(mapWidth, mapHeight).Render(fm, meta.System().Charges()))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	fm, meta, err := st.LoadFieldMap(args[0])
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = meta.ID + ".svg"
	}
	if !strings.HasSuffix(strings.ToLower(path), ".svg") {
		path += ".svg"
	}

	svg := export.FieldMapToSVG(fm, meta.System().Charges(), svgWidth, svgHeight)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	src, sys, err := cfg.Source()
	if err != nil {
		return err
	}
	m, err := tui.NewProbe(cfg.Name, src, sys, cfg.Grid.Grid(), cfg.ProbePoint())
	if err != nil {
		return err
	}
	return tui.Run(m)
}
