// Package chart turns sick-count time series into axis scales and plot
// coordinates, and renders them to PNG.
package chart

import "github.com/realmfikri/pandemica/internal/series"

// Scale holds the pixels-per-unit factors of both axes.
type Scale struct {
	X, Y float64
}

// ComputeScale merges the series key-wise and fits the largest tick and the
// largest sick count to axisLength. An axis whose maximum is zero, including
// the case of no samples at all, gets a scale of 1.
func ComputeScale(axisLength float64, all ...*series.TimeSeries) Scale {
	maxTick, maxSick := series.Merge(all...).Max()

	s := Scale{X: 1, Y: 1}
	if maxTick > 0 {
		s.X = axisLength / float64(maxTick)
	}
	if maxSick > 0 {
		s.Y = axisLength / float64(maxSick)
	}
	return s
}

// Adapter is the data contract between the engine and a plot renderer. The
// y axis grows upwards from the origin, so pixel rows decrease as values rise.
type Adapter struct {
	OriginX, OriginY float64
	AxisLength       float64
	CriticalHeights  []float64

	scale Scale
}

// NewAdapter creates an adapter with identity scale.
func NewAdapter(originX, originY, axisLength float64, critical ...float64) *Adapter {
	return &Adapter{
		OriginX:         originX,
		OriginY:         originY,
		AxisLength:      axisLength,
		CriticalHeights: critical,
		scale:           Scale{X: 1, Y: 1},
	}
}

// Refresh recomputes the scale from the given series.
func (a *Adapter) Refresh(all ...*series.TimeSeries) Scale {
	a.scale = ComputeScale(a.AxisLength, all...)
	return a.scale
}

// Scale returns the scale from the last Refresh.
func (a *Adapter) Scale() Scale {
	return a.scale
}

// Project maps a sample to pixel coordinates.
func (a *Adapter) Project(p series.Point) (x, y float64) {
	return float64(p.Tick)*a.scale.X + a.OriginX, -float64(p.Sick)*a.scale.Y + a.OriginY
}

// CriticalLines returns the pixel rows of the critical heights that fit on
// the y axis.
func (a *Adapter) CriticalLines() []float64 {
	var rows []float64
	for _, h := range a.CriticalHeights {
		row := a.OriginY - h*a.scale.Y
		if row >= a.OriginY-a.AxisLength {
			rows = append(rows, row)
		}
	}
	return rows
}
