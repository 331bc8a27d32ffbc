package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/analysis"
	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/driver"
	"github.com/san-kum/gravsim/internal/export"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	dataDir string
	debug   bool
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{}

	liveCmd := a.newLiveCmd()

	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "direct n-body gravity simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logFile = setupLogging(a.dataDir, a.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				a.logFile.Close()
				a.logFile = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return liveCmd.RunE(liveCmd, args)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data", ".gravsim", "data directory")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "write a debug log to the data directory")

	rootCmd.AddCommand(
		a.newRunCmd(),
		liveCmd,
		a.newBenchCmd(),
		a.newListCmd(),
		a.newPlotCmd(),
		a.newExportCmd(),
		a.newExportCSVCmd(),
		a.newAnalyzeCmd(),
		a.newSnapshotCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

func (a *app) newRunCmd() *cobra.Command {
	f := &simFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store sampled frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return a.runSimulation(cmd, cfg)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runSimulation(cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	c, err := cfg.NewContainer()
	if err != nil {
		return err
	}
	if err := c.Initialize(cfg.Bodies); err != nil {
		return err
	}
	format, _ := cfg.ExtractFormat()

	st := storage.New(a.dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rec := driver.NewRecorder(cfg.Sample, cfg.Dt)
	rec.Seed(c.Extract(nil, format, cfg.Scale))

	ms := metrics.Defaults()
	observe := func() {
		if eng, ok := c.Engine(); ok {
			for _, m := range ms {
				m.Observe(eng)
			}
		}
	}
	observe()
	frames := 0
	observer := driver.RendererFunc(func([]float32) error {
		frames++
		if frames%cfg.Sample == 0 {
			observe()
		}
		return nil
	})

	loop := driver.New(c, driver.Multi(rec, observer), driver.Config{
		Format:    format,
		Scale:     cfg.Scale,
		MaxFrames: cfg.Steps,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "running %d bodies (%s, %s)...\n", cfg.Bodies, cfg.Layout, cfg.Integrator)
	start := time.Now()
	err = loop.Run(ctx)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "interrupted, saving frames recorded so far")
	case err != nil:
		return err
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	runID, err := st.Save(storage.RunMetadata{
		Bodies:     cfg.Bodies,
		Steps:      loop.Frames(),
		Dt:         cfg.Dt,
		G:          cfg.G,
		Epsilon:    cfg.Epsilon,
		Layout:     cfg.Layout,
		Integrator: cfg.Integrator,
		Format:     format.String(),
		Scale:      cfg.Scale,
		Sample:     cfg.Sample,
		Metrics:    values,
	}, rec.Frames)
	if err != nil {
		return err
	}
	log.Printf("run %s saved: %d frames", runID, len(rec.Frames))

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "steps: %d\n", loop.Frames())
	fmt.Fprintf(out, "frames: %d\n", len(rec.Frames))
	fmt.Fprintln(out, "\nmetrics:")
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6g\n", name, values[name])
	}
	return nil
}

func (a *app) newLiveCmd() *cobra.Command {
	f := &simFlags{}
	var theme string
	cmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with a live terminal view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			c, err := cfg.NewContainer()
			if err != nil {
				return err
			}
			format, _ := cfg.ExtractFormat()
			m := viz.NewModel(c, viz.Options{
				Bodies:   cfg.Bodies,
				Format:   format,
				Scale:    cfg.Scale,
				Interval: cfg.Interval(),
				Title:    fmt.Sprintf("gravsim %s", cfg.Layout),
				Theme:    theme,
			})
			if err := m.Err(); err != nil {
				return err
			}
			return viz.Run(m)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&theme, "theme", "cyberpunk", "color theme")
	return cmd
}

func (a *app) newBenchCmd() *cobra.Command {
	var (
		sizes      []int
		steps      int
		workers    int
		integrator string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "measure steps per second for several body counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			integ, err := integrators.Get(integrator)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "benchmarking %s, %d steps per size, %d workers\n\n", integ.Name(), steps, max(workers, 1))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "BODIES\tSTEPS\tTIME\tSTEPS/SEC\tPAIRS/SEC")
			for _, n := range sizes {
				c := sim.NewContainer(sim.PolicyReplace, physics.WithIntegrator(integ), physics.WithWorkers(workers))
				if err := c.Initialize(n); err != nil {
					return err
				}
				loop := driver.New(c, driver.RendererFunc(func([]float32) error { return nil }), driver.Config{
					Format:    sim.FormatXYZ,
					Scale:     1,
					MaxFrames: steps,
				})

				start := time.Now()
				if err := loop.Run(cmd.Context()); err != nil {
					return err
				}
				elapsed := time.Since(start)

				stepsPerSec := float64(loop.Frames()) / elapsed.Seconds()
				pairsPerSec := stepsPerSec * float64(n) * float64(n-1)
				fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\t%.3g\n", n, loop.Frames(), elapsed.Round(time.Microsecond), stepsPerSec, pairsPerSec)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{10, 100, 200, 500, 1000}, "body counts to benchmark")
	cmd.Flags().IntVar(&steps, "steps", 20, "steps per body count")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "goroutines for the force pass")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(a.dataDir).List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs found")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLAYOUT\tTIME\tBODIES\tSTEPS\tDT\tINTEG")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4f\t%s\n",
					run.ID,
					run.Layout,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Bodies,
					run.Steps,
					run.Dt,
					run.Integrator,
				)
			}
			return w.Flush()
		},
	}
}

func (a *app) newPlotCmd() *cobra.Command {
	var body int
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot one body's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, rows, _, comps, err := a.loadRun(args[0])
			if err != nil {
				return err
			}
			if body < 0 || (body+1)*comps > len(rows[0]) {
				return fmt.Errorf("body %d out of range (run has %d bodies)", body, len(rows[0])/comps)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run: %s\n", meta.ID)
			fmt.Fprintf(out, "layout: %s, %d bodies\n", meta.Layout, meta.Bodies)
			fmt.Fprintf(out, "samples: %d\n\n", len(rows))

			axes := []string{"x", "y", "z"}
			for k := 0; k < comps; k++ {
				data := make([]float64, len(rows))
				for i, row := range rows {
					data[i] = row[body*comps+k]
				}
				graph := asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("body %d %s vs time", body, axes[k])),
				)
				fmt.Fprintln(out, graph)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&body, "body", 0, "body index")
	return cmd
}

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := storage.New(a.dataDir).Load(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		},
	}
}

func (a *app) newExportCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, times, err := storage.New(a.dataDir).LoadFrames(args[0])
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return fmt.Errorf("no data to export")
			}
			return storage.WriteRowsCSV(cmd.OutOrStdout(), rows, times)
		},
	}
}

// loadRun reads a stored run and the components per body of its frames.
func (a *app) loadRun(runID string) (*storage.RunMetadata, [][]float64, []float64, int, error) {
	st := storage.New(a.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	rows, times, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	if len(rows) == 0 {
		return nil, nil, nil, 0, fmt.Errorf("run %s has no frames", runID)
	}
	format, err := sim.ParseFormat(meta.Format)
	if err != nil {
		return nil, nil, nil, 0, err
	}
	return meta, rows, times, format.Components(), nil
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	var (
		body int
		axis int
	)
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of one body coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, rows, _, comps, err := a.loadRun(args[0])
			if err != nil {
				return err
			}
			if axis < 0 || axis >= comps {
				return fmt.Errorf("axis %d out of range for %s frames", axis, meta.Format)
			}
			samples, err := analysis.Column(rows, body*comps+axis)
			if err != nil {
				return err
			}
			s, err := analysis.PowerSpectrum(samples, meta.Dt*float64(meta.Sample))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "frequency analysis: %s\n", meta.ID)
			fmt.Fprintf(out, "body %d, axis %d, %d samples\n\n", body, axis, len(samples))
			fmt.Fprintln(out, asciigraph.Plot(s.Power,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption("power spectrum"),
			))
			fmt.Fprintln(out)

			freq, _ := s.Dominant()
			fmt.Fprintf(out, "dominant frequency: %.4f\n", freq)
			if freq > 0 {
				fmt.Fprintf(out, "period: %.4f\n", 1/freq)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&body, "body", 0, "body index")
	cmd.Flags().IntVar(&axis, "axis", 0, "coordinate index (0=x, 1=y, 2=z)")
	return cmd
}

func (a *app) newSnapshotCmd() *cobra.Command {
	var (
		outPath string
		trail   int
		scale   float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot [run_id]",
		Short: "write the last frame of a run, or one body's path, as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rows, _, comps, err := a.loadRun(args[0])
			if err != nil {
				return err
			}

			var svg string
			if trail >= 0 {
				if (trail+1)*comps > len(rows[0]) {
					return fmt.Errorf("body %d out of range", trail)
				}
				points := make([]export.Point, len(rows))
				for i, row := range rows {
					points[i] = export.Point{X: row[trail*comps], Y: row[trail*comps+1]}
				}
				svg = export.TrajectoryToSVG(points, 800, 800, "#00ffff")
			} else {
				last := rows[len(rows)-1]
				frame := make([]float32, len(last))
				for i, v := range last {
					frame[i] = float32(v)
				}
				canvas := viz.NewCanvas(80, 40)
				cam := viz.NewCamera()
				cam.Fit(frame, comps)
				if comps == 3 {
					viz.PlotXYZ(canvas, cam, frame)
				} else {
					viz.PlotXY(canvas, cam, frame)
				}
				svg = export.CanvasToSVG(canvas, scale, "#00ff00")
			}

			if outPath == "" || outPath == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&trail, "trail", -1, "draw the path of this body instead of the last frame")
	cmd.Flags().Float64Var(&scale, "pixel", 4, "SVG units per canvas dot")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBODIES\tLAYOUT\tINTEG\tDT\tSTEPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%g\t%d\n", name, p.Bodies, p.Layout, p.Integrator, p.Dt, p.Steps)
			}
			fmt.Fprintf(w, "\nlayouts: %v\nintegrators: %v\n", physics.LayoutNames(), integrators.Names())
			return w.Flush()
		},
	}
}
