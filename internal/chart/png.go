package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/realmfikri/pandemica/internal/series"
)

// Dataset is one population's series with its legend name and colour.
type Dataset struct {
	Name   string
	Color  string
	Series *series.TimeSeries
}

var criticalColor = color.RGBA{R: 0xcc, A: 0xff}

// WritePNG renders the datasets as a scatter of sick counts over ticks, with a
// horizontal line at every critical height.
func WritePNG(w io.Writer, width, height vg.Length, datasets []Dataset, critical []float64) error {
	p := plot.New()
	p.Title.Text = "Infected over time"
	p.X.Label.Text = "Tick"
	p.Y.Label.Text = "Infected"
	p.X.Min = 0
	p.Y.Min = 0

	maxTick := 1.0
	for _, d := range datasets {
		if d.Series == nil || d.Series.Len() == 0 {
			continue
		}
		c, err := ParseColor(d.Color)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", d.Name, err)
		}

		points := d.Series.Points()
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i].X = float64(pt.Tick)
			xys[i].Y = float64(pt.Sick)
			if xys[i].X > maxTick {
				maxTick = xys[i].X
			}
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(scatter)
		p.Legend.Add(d.Name, scatter)
	}

	for _, h := range critical {
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: h}, {X: maxTick, Y: h}})
		if err != nil {
			return fmt.Errorf("critical line %v: %w", h, err)
		}
		line.LineStyle.Color = criticalColor
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("preparing png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = fmt.Errorf("unexpected length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
