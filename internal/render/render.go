// Package render rasterises agent snapshots and records them as MJPEG video.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"

	"github.com/icza/mjpeg"

	"github.com/realmfikri/pandemica/internal/sim"
)

// Bounds is the simulation rectangle a frame covers.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// BoundsOf returns the rectangle covered by params.
func BoundsOf(p sim.Params) Bounds {
	return Bounds{X: p.OriginX, Y: p.OriginY, Width: p.Width, Height: p.Height}
}

// Palette maps health states to fill colours.
var Palette = map[sim.Health]color.RGBA{
	sim.Susceptible: {B: 0xff, A: 0xff},
	sim.Infected:    {R: 0xff, A: 0xff},
	sim.Immune:      {R: 0x4c, G: 0xbb, B: 0x17, A: 0xff},
	sim.Dead:        {A: 0xff},
}

var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Rasterize draws every agent as a filled circle on a white canvas of the
// bounds' size, translated so the bounds' origin is the top-left pixel.
func Rasterize(views []sim.AgentView, b Bounds) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(b.Width)), int(math.Ceil(b.Height))))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	for _, v := range views {
		fillCircle(img, v.X-b.X, v.Y-b.Y, v.Radius, Palette[v.Health])
	}
	return img
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	rect := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	).Intersect(img.Bounds())

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// Recorder appends rasterised frames to an MJPEG AVI file.
type Recorder struct {
	writer  mjpeg.AviWriter
	bounds  Bounds
	quality int
	buf     bytes.Buffer
	frames  int
	closed  bool
}

// NewRecorder creates the AVI file at path.
func NewRecorder(path string, b Bounds, fps int) (*Recorder, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	w, h := int32(math.Ceil(b.Width)), int32(math.Ceil(b.Height))
	writer, err := mjpeg.New(path, w, h, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating video %s: %w", path, err)
	}
	return &Recorder{writer: writer, bounds: b, quality: 90}, nil
}

// AddFrame rasterises views and appends the frame.
func (r *Recorder) AddFrame(views []sim.AgentView) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, Rasterize(views, r.bounds), &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("encoding frame %d: %w", r.frames, err)
	}
	if err := r.writer.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("adding frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close finalises the AVI file. Calling it again is a no-op.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.writer.Close()
}
