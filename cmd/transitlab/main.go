package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/transitlab/internal/batch"
	"github.com/san-kum/transitlab/internal/config"
	"github.com/san-kum/transitlab/internal/report"
	"github.com/san-kum/transitlab/internal/storage"
	"github.com/san-kum/transitlab/internal/sweep"
	"github.com/san-kum/transitlab/internal/transit"
	"github.com/san-kum/transitlab/internal/tui"
)

var (
	dataDir string

	periodDays   float64
	mstarSolar   float64
	rstarSolar   float64
	depth        float64
	depthErr     float64
	durationDays float64
	durationErr  float64

	configFile string

	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepPoints int

	benchIters int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transitlab",
		Short: "exoplanet transit parameter lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(tui.NewBrowser()).Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".transitlab", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute [object]",
		Short: "compute system parameters for one object",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompute,
	}
	computeCmd.Flags().Float64Var(&periodDays, "period", config.DefaultPeriodDays, "orbital period (days)")
	computeCmd.Flags().Float64Var(&mstarSolar, "mstar", config.DefaultMstarSolar, "stellar mass (solar masses)")
	computeCmd.Flags().Float64Var(&rstarSolar, "rstar", config.DefaultRstarSolar, "stellar radius (solar radii)")
	computeCmd.Flags().Float64Var(&depth, "depth", config.DefaultDepth, "transit depth (fraction)")
	computeCmd.Flags().Float64Var(&depthErr, "depth-err", 0, "transit depth uncertainty")
	computeCmd.Flags().Float64Var(&durationDays, "duration", config.DefaultDurationDays, "transit duration (days)")
	computeCmd.Flags().Float64Var(&durationErr, "duration-err", 0, "transit duration uncertainty (days)")
	computeCmd.Flags().StringVar(&configFile, "config", "", "object config file (yaml)")

	batchCmd := &cobra.Command{
		Use:   "batch [catalog.yaml]",
		Short: "run the pipeline over a catalog (built-in when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBatch,
	}

	objectsCmd := &cobra.Command{
		Use:   "objects",
		Short: "list built-in catalog objects",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%s: P=%g d, depth=%g, Tdur=%g d\n", name, p.PeriodDays, p.Depth, p.DurationDays)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [object]",
		Short: "sweep one observable and plot the response",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "duration", "parameter to sweep (depth|duration)")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "sweep start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0, "sweep end")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 60, "number of sweep points")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print a run's result rows as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark pipeline throughput",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchIters, "iters", 100000, "pipeline evaluations per object")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive catalog browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(tui.NewBrowser()).Run()
			return err
		},
	}

	rootCmd.AddCommand(computeCmd, batchCmd, objectsCmd, sweepCmd, listCmd, exportCmd, exportCSVCmd, benchCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		p := config.GetPreset(args[0])
		if p == nil {
			return fmt.Errorf("unknown object: %s (available: %v)", args[0], config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and file values.
	if cmd.Flags().Changed("period") {
		cfg.PeriodDays = periodDays
	}
	if cmd.Flags().Changed("mstar") {
		cfg.MstarSolar = mstarSolar
	}
	if cmd.Flags().Changed("rstar") {
		cfg.RstarSolar = rstarSolar
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = depth
	}
	if cmd.Flags().Changed("depth-err") {
		cfg.DepthErr = depthErr
	}
	if cmd.Flags().Changed("duration") {
		cfg.DurationDays = durationDays
	}
	if cmd.Flags().Changed("duration-err") {
		cfg.DurationErrDays = durationErr
	}

	out, err := transit.ComputeAll(cfg.Inputs())
	if err != nil {
		return err
	}

	fmt.Printf("object %s\n", cfg.Name)
	fmt.Print(report.Render(out))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cat := config.BuiltinCatalog()
	if len(args) > 0 {
		loaded, err := config.LoadCatalog(args[0])
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}

	inputs := make([]transit.SystemInputs, len(cat.Objects))
	for i := range cat.Objects {
		inputs[i] = cat.Objects[i].Inputs()
	}

	results := batch.Run(inputs)

	if err := report.WriteTable(os.Stdout, results); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cat.Name, results)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s (%d objects, %d failed)\n", runID, len(results), batch.Failures(results))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown object: %s (available: %v)", args[0], config.ListPresets())
	}

	param := sweep.Param(sweepParam)
	min, max := sweepMin, sweepMax
	if !cmd.Flags().Changed("min") || !cmd.Flags().Changed("max") {
		// Default range: a band around the object's own value.
		switch param {
		case sweep.ParamDepth:
			min, max = p.Depth*0.2, p.Depth*2
		case sweep.ParamDuration:
			min, max = p.DurationDays*0.2, p.DurationDays*1.5
		}
	}

	points, err := sweep.Run(p.Inputs(), param, min, max, sweepPoints)
	if err != nil {
		return err
	}

	var series []float64
	var caption string
	switch param {
	case sweep.ParamDepth:
		series = sweep.Series(points, sweep.PlanetRadiusKm)
		caption = fmt.Sprintf("planet radius (km) vs depth [%g..%g]", min, max)
	default:
		series = sweep.Series(points, sweep.AlphaDegrees)
		caption = fmt.Sprintf("inclination offset (deg) vs duration [%g..%g d]", min, max)
	}

	if len(series) == 0 {
		return fmt.Errorf("no valid points in sweep range")
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)

	if dropped := len(points) - len(series); dropped > 0 {
		fmt.Printf("\n%d of %d points outside the valid domain\n", dropped, len(points))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATALOG\tTIME\tOBJECTS\tFAILED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.Catalog,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Objects,
			run.Failures,
		)
	}
	return w.Flush()
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	rows, err := storage.New(dataDir).LoadResults(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	fmt.Printf("benchmarking pipeline (%d iterations per object)\n\n", benchIters)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OBJECT\tITERS\tTIME\tEVALS/SEC")

	for _, name := range config.ListPresets() {
		in := config.GetPreset(name).Inputs()

		start := time.Now()
		for i := 0; i < benchIters; i++ {
			if _, err := transit.ComputeAll(in); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\n",
			name, benchIters, elapsed, float64(benchIters)/elapsed.Seconds())
	}

	return w.Flush()
}
