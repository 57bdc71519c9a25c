package chart

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/realmfikri/pandemica/internal/series"
)

func seriesOf(samples ...[2]int) *series.TimeSeries {
	s := series.New()
	for _, sm := range samples {
		s.Record(sm[0], sm[1])
	}
	return s
}

func TestComputeScaleEmptyIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		in   []*series.TimeSeries
	}{
		{"no series", nil},
		{"empty series", []*series.TimeSeries{series.New()}},
		{"only origin sample", []*series.TimeSeries{seriesOf([2]int{0, 0})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScale(600, tt.in...)
			if got != (Scale{X: 1, Y: 1}) {
				t.Fatalf("expected identity scale, got %+v", got)
			}
		})
	}
}

func TestComputeScaleAxesIndependent(t *testing.T) {
	got := ComputeScale(600, seriesOf([2]int{0, 1}, [2]int{300, 12}, [2]int{200, 30}))
	if got.X != 2 || got.Y != 20 {
		t.Fatalf("expected scale (2, 20), got %+v", got)
	}

	// Only the y axis is degenerate.
	got = ComputeScale(600, seriesOf([2]int{150, 0}))
	if got.X != 4 || got.Y != 1 {
		t.Fatalf("expected scale (4, 1), got %+v", got)
	}
}

func TestComputeScaleMergesLaterSeriesWins(t *testing.T) {
	a := seriesOf([2]int{10, 60})
	b := seriesOf([2]int{10, 30}, [2]int{5, 20})

	got := ComputeScale(600, a, b)
	if got.X != 60 || got.Y != 20 {
		t.Fatalf("expected merged scale (60, 20), got %+v", got)
	}
}

func TestAdapterProjectAndCriticalLines(t *testing.T) {
	a := NewAdapter(800, 700, 600, 35, 500)
	if a.Scale() != (Scale{X: 1, Y: 1}) {
		t.Fatalf("expected identity scale before refresh, got %+v", a.Scale())
	}

	a.Refresh(seriesOf([2]int{100, 50}))

	x, y := a.Project(series.Point{Tick: 50, Sick: 25})
	if x != 1100 || y != 400 {
		t.Fatalf("expected (1100, 400), got (%v, %v)", x, y)
	}

	rows := a.CriticalLines()
	if len(rows) != 1 || rows[0] != 700-35*12 {
		t.Fatalf("expected only the 35 line at row %v, got %v", 700-35*12, rows)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff9933", color.RGBA{R: 0xff, G: 0x99, B: 0x33, A: 0xff}, false},
		{"#cc00ff", color.RGBA{R: 0xcc, G: 0x00, B: 0xff, A: 0xff}, false},
		{"#0f0", color.RGBA{G: 0xff, A: 0xff}, false},
		{"orange", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	datasets := []Dataset{
		{Name: "mobile", Color: "#ff9933", Series: seriesOf([2]int{1, 1}, [2]int{40, 12}, [2]int{90, 3})},
		{Name: "distanced", Color: "#cc00ff", Series: seriesOf([2]int{1, 1}, [2]int{60, 4})},
		{Name: "empty", Color: "#000000", Series: series.New()},
	}

	if err := WritePNG(&buf, 4*vg.Inch, 3*vg.Inch, datasets, []float64{35}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("expected a decodable png, got %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("expected a non-empty image, got %v", b)
	}
}

func TestWritePNGRejectsBadColor(t *testing.T) {
	var buf bytes.Buffer
	datasets := []Dataset{{Name: "bad", Color: "blue", Series: seriesOf([2]int{1, 1})}}
	if err := WritePNG(&buf, vg.Inch, vg.Inch, datasets, nil); err == nil {
		t.Fatal("expected an error for an invalid colour")
	}
}
