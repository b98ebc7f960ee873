// Package telemetry accumulates per-tick samples of a tracked entity and
// renders them as SVG plots, the way the teacher application plots flight
// motion data.
package telemetry

import (
	"fmt"
	"image/color"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sample is one tick's worth of tracked state.
type Sample struct {
	Time     float64
	Position float64 // altitude proxy: position.Y
	Speed    float64
}

// Recorder accumulates samples for a single tracked entity across ticks.
type Recorder struct {
	Entity  ecs.EntityId
	elapsed float64
	samples []Sample
}

// NewRecorder builds a Recorder for entity.
func NewRecorder(entity ecs.EntityId) *Recorder {
	return &Recorder{Entity: entity}
}

// Sample reads the tracked entity's current Transform/Physics and appends a
// Sample, advancing the recorder's clock by dt. It is a no-op if the
// entity no longer carries both components.
func (r *Recorder) Sample(world *ecs.World, dt float64) {
	r.elapsed += dt
	tr, err := components.GetTransform(world, r.Entity)
	if err != nil {
		return
	}
	ph, err := components.GetPhysics(world, r.Entity)
	if err != nil {
		return
	}
	r.samples = append(r.samples, Sample{
		Time:     r.elapsed,
		Position: tr.Position.Y,
		Speed:    ph.Velocity.Magnitude(),
	})
}

// Samples returns the accumulated samples.
func (r *Recorder) Samples() []Sample {
	return r.samples
}

// SaveAltitudePlot renders altitude vs. time as an SVG at path.
func (r *Recorder) SaveAltitudePlot(path string) error {
	if len(r.samples) == 0 {
		return fmt.Errorf("telemetry: no samples recorded for entity %s", r.Entity)
	}

	pts := make(plotter.XYs, len(r.samples))
	for i, s := range r.samples {
		pts[i].X = s.Time
		pts[i].Y = s.Position
	}

	p := plot.New()
	p.Title.Text = "Altitude vs. Time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Position.Y (m)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("telemetry: failed to create line plotter: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("telemetry: failed to save plot %s: %w", path, err)
	}
	return nil
}

// SaveSpeedPlot renders speed vs. time as an SVG at path.
func (r *Recorder) SaveSpeedPlot(path string) error {
	if len(r.samples) == 0 {
		return fmt.Errorf("telemetry: no samples recorded for entity %s", r.Entity)
	}

	pts := make(plotter.XYs, len(r.samples))
	for i, s := range r.samples {
		pts[i].X = s.Time
		pts[i].Y = s.Speed
	}

	p := plot.New()
	p.Title.Text = "Speed vs. Time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Speed (m/s)"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("telemetry: failed to create line plotter: %w", err)
	}
	line.Color = color.RGBA{R: 200, A: 255}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("telemetry: failed to save plot %s: %w", path, err)
	}
	return nil
}
