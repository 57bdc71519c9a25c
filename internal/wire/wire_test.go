package wire

import (
	"errors"
	"math/rand"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/sim"
	pb "github.com/realmfikri/pandemica/proto"
)

func TestFrameFromSnapshotRoundTrip(t *testing.T) {
	params := sim.DefaultParams()
	params.Size = 5
	pop, err := sim.New(params, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	world, err := sim.NewWorld(nil, sim.Member{Name: "mobile", Color: "#ff9933", Population: pop})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	world.ApplyControls(sim.ControlSettings{TransmissionModifier: 0.25, LockdownEnabled: true})

	snap := world.Snapshot()
	want := FrameFromSnapshot(snap, chart.Scale{X: 2, Y: 0.5})

	payload, err := EncodeFrame(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env, err := Decode(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.GetControl() != nil || env.GetFrame() == nil {
		t.Fatalf("expected a frame envelope, got %v", env)
	}
	if !proto.Equal(env.GetFrame(), want) {
		t.Fatalf("expected %v, got %v", want, env.GetFrame())
	}

	got := env.GetFrame()
	if got.GetTick() != 3 || got.GetScaleX() != 2 || got.GetScaleY() != 0.5 {
		t.Fatalf("expected tick 3 with scale 2x0.5, got %v", got)
	}
	if c := Controls(got.GetControls()); c.TransmissionModifier != 0.25 || !c.LockdownEnabled {
		t.Fatalf("expected modifier 0.25 with lockdown, got %+v", c)
	}

	population := got.GetPopulations()[0]
	if len(population.GetAgents()) != 5 || population.GetAgents()[0].GetHealth() != pb.Health_INFECTED {
		t.Fatalf("expected 5 agents with the seeded infection first, got %v", population.GetAgents())
	}
	found := false
	for _, s := range population.GetSamples() {
		if s.GetTick() == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the init sample at tick 1, got %v", population.GetSamples())
	}
}

func TestHealthValuesMatchSimulation(t *testing.T) {
	tests := []struct {
		health sim.Health
		want   pb.Health
	}{
		{sim.Susceptible, pb.Health_SUSCEPTIBLE},
		{sim.Infected, pb.Health_INFECTED},
		{sim.Immune, pb.Health_IMMUNE},
		{sim.Dead, pb.Health_DEAD},
	}
	for _, tt := range tests {
		if got := pb.Health(tt.health); got != tt.want {
			t.Errorf("expected %v for %v, got %v", tt.want, tt.health, got)
		}
	}
}

func TestDecodeControl(t *testing.T) {
	payload, err := EncodeControl(sim.ControlSettings{TransmissionModifier: 0.6, LockdownEnabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env, err := Decode(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.GetFrame() != nil || env.GetControl() == nil {
		t.Fatalf("expected a control envelope, got %v", env)
	}
	if c := Controls(env.GetControl()); c.TransmissionModifier != 0.6 || !c.LockdownEnabled {
		t.Fatalf("expected modifier 0.6 with lockdown, got %+v", c)
	}
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	control, err := proto.Marshal(&pb.ControlUpdate{TransmissionModifier: 0.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	control = protowire.AppendTag(control, 9, protowire.BytesType)
	control = protowire.AppendString(control, "future")

	var b []byte
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, control)

	env, err := Decode(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.GetControl().GetTransmissionModifier() != 0.3 {
		t.Fatalf("expected modifier 0.3, got %v", env)
	}
}

func TestDecodeErrors(t *testing.T) {
	valid, err := EncodeControl(sim.DefaultControls())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	badHealth, err := EncodeFrame(&pb.Frame{
		Populations: []*pb.Population{{Name: "mobile", Agents: []*pb.Agent{{Health: pb.Health(9)}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{"truncated", valid[:len(valid)-2]},
		{"garbage tag", []byte{0xff}},
		{"unknown health", badHealth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.in); err == nil {
				t.Fatal("expected an error")
			}
		})
	}

	if _, err := Decode(nil); !errors.Is(err, ErrEmptyEnvelope) {
		t.Fatalf("expected ErrEmptyEnvelope for empty input, got %v", err)
	}
}
