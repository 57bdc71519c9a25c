package render

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/realmfikri/pandemica/internal/sim"
)

func TestRasterizeColorsByHealth(t *testing.T) {
	b := Bounds{X: 0, Y: 10, Width: 100, Height: 100}
	views := []sim.AgentView{
		{X: 20, Y: 30, Radius: 5, Health: sim.Susceptible},
		{X: 50, Y: 60, Radius: 5, Health: sim.Infected},
		{X: 80, Y: 90, Radius: 5, Health: sim.Dead},
	}

	img := Rasterize(views, b)
	if got := img.Bounds().Dx(); got != 100 {
		t.Fatalf("expected width 100, got %d", got)
	}

	tests := []struct {
		x, y int
		want sim.Health
	}{
		{20, 20, sim.Susceptible},
		{50, 50, sim.Infected},
		{80, 80, sim.Dead},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != Palette[tt.want] {
			t.Fatalf("expected %v colour at (%d, %d), got %v", tt.want, tt.x, tt.y, got)
		}
	}

	if got := img.RGBAAt(2, 2); got != background {
		t.Fatalf("expected background at (2, 2), got %v", got)
	}
}

func TestRasterizeClipsAtEdges(t *testing.T) {
	b := Bounds{Width: 20, Height: 20}
	img := Rasterize([]sim.AgentView{{X: 0, Y: 0, Radius: 5, Health: sim.Immune}}, b)
	if got := img.RGBAAt(0, 0); got != Palette[sim.Immune] {
		t.Fatalf("expected immune colour at the corner, got %v", got)
	}
}

func TestRecorderWritesVideo(t *testing.T) {
	params := sim.DefaultParams()
	params.Width, params.Height = 120, 80
	pop, err := sim.New(params, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, BoundsOf(params), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := pop.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rec.AddFrame(pop.Agents()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", rec.Frames())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected video file, got %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty video file")
	}
}

func TestNewRecorderRejectsBadFPS(t *testing.T) {
	if _, err := NewRecorder(filepath.Join(t.TempDir(), "x.avi"), Bounds{Width: 10, Height: 10}, 0); err == nil {
		t.Fatal("expected an error for zero fps")
	}
}
