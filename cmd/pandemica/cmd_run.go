package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/config"
	"github.com/realmfikri/pandemica/internal/render"
	"github.com/realmfikri/pandemica/internal/sim"
)

type populationSummary struct {
	Name        string `json:"name"`
	Susceptible int    `json:"susceptible"`
	Infected    int    `json:"infected"`
	Immune      int    `json:"immune"`
	Dead        int    `json:"dead"`
	Collisions  int    `json:"collisions"`
	PeakSick    int    `json:"peak_sick"`
	PeakTick    int    `json:"peak_tick"`
}

type runSummary struct {
	Ticks       int                 `json:"ticks"`
	ScaleX      float64             `json:"scale_x"`
	ScaleY      float64             `json:"scale_y"`
	Populations []populationSummary `json:"populations"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless for a fixed number of steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			steps, _ := cmd.Flags().GetInt("steps")
			plotPath, _ := cmd.Flags().GetString("plot")
			videoPath, _ := cmd.Flags().GetString("video")
			videoPop, _ := cmd.Flags().GetString("video-population")
			fps, _ := cmd.Flags().GetInt("fps")
			frameEvery, _ := cmd.Flags().GetInt("frame-every")
			jsonOut, _ := cmd.Flags().GetBool("json")

			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			if frameEvery <= 0 {
				return fmt.Errorf("--frame-every must be positive, got %d", frameEvery)
			}

			world, err := buildWorld(cfg, logger)
			if err != nil {
				return err
			}

			var rec *render.Recorder
			videoIndex := 0
			if videoPath != "" {
				videoIndex, err = populationIndex(cfg, videoPop)
				if err != nil {
					return err
				}
				rec, err = render.NewRecorder(videoPath, render.BoundsOf(cfg.Params(videoIndex)), fps)
				if err != nil {
					return err
				}
				defer rec.Close()
			}

			ctx := cmd.Context()
			for step := 1; step <= steps; step++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := world.Step(); err != nil {
					return err
				}
				if rec != nil && step%frameEvery == 0 {
					snap := world.Snapshot()
					if err := rec.AddFrame(snap.Populations[videoIndex].Agents); err != nil {
						return err
					}
				}
			}

			snap := world.Snapshot()
			summary := summarize(snap, cfg.Chart.AxisLength)
			logger.Info("run complete", "ticks", snap.Tick)

			if rec != nil {
				if err := rec.Close(); err != nil {
					return fmt.Errorf("closing video: %w", err)
				}
				logger.Info("wrote video", "path", videoPath, "frames", rec.Frames())
			}
			if plotPath != "" {
				if err := writePlot(plotPath, snap, cfg.Chart.CriticalHeights); err != nil {
					return err
				}
				logger.Info("wrote chart", "path", plotPath)
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().Int("steps", 10000, "Number of steps to simulate")
	cmd.Flags().String("plot", "", "Write the infections chart to this PNG file")
	cmd.Flags().String("video", "", "Write an MJPEG AVI of one population to this file")
	cmd.Flags().String("video-population", "", "Population to record (default: the first)")
	cmd.Flags().Int("fps", 30, "Video frame rate")
	cmd.Flags().Int("frame-every", 10, "Record a video frame every N steps")
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	return cmd
}

func populationIndex(cfg *config.Config, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, p := range cfg.Populations {
		if p.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown population %q", name)
}

func summarize(snap sim.Snapshot, axisLength float64) runSummary {
	scale := chart.ComputeScale(axisLength, snap.Series()...)
	s := runSummary{
		Ticks:  snap.Tick,
		ScaleX: scale.X,
		ScaleY: scale.Y,
	}
	for _, p := range snap.Populations {
		ps := populationSummary{Name: p.Name, Collisions: p.Collisions}
		for _, a := range p.Agents {
			switch a.Health {
			case sim.Susceptible:
				ps.Susceptible++
			case sim.Infected:
				ps.Infected++
			case sim.Immune:
				ps.Immune++
			case sim.Dead:
				ps.Dead++
			}
		}
		for _, pt := range p.Series.Points() {
			if pt.Sick > ps.PeakSick {
				ps.PeakSick = pt.Sick
				ps.PeakTick = pt.Tick
			}
		}
		s.Populations = append(s.Populations, ps)
	}
	return s
}

func printSummary(w io.Writer, s runSummary) {
	fmt.Fprintf(w, "ticks: %d\n", s.Ticks)
	for _, p := range s.Populations {
		fmt.Fprintf(w, "%s: susceptible=%d infected=%d immune=%d dead=%d collisions=%d peak=%d@%d\n",
			p.Name, p.Susceptible, p.Infected, p.Immune, p.Dead, p.Collisions, p.PeakSick, p.PeakTick)
	}
}

func writePlot(path string, snap sim.Snapshot, critical []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}
	defer f.Close()

	datasets := make([]chart.Dataset, len(snap.Populations))
	for i, p := range snap.Populations {
		datasets[i] = chart.Dataset{Name: p.Name, Color: p.Color, Series: p.Series}
	}
	if err := chart.WritePNG(f, 8*vg.Inch, 4*vg.Inch, datasets, critical); err != nil {
		return err
	}
	return f.Close()
}
