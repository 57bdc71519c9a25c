// Package wire maps world snapshots and control settings onto the protobuf
// messages in proto/pandemica.proto.
package wire

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/sim"
	pb "github.com/realmfikri/pandemica/proto"
)

// ErrEmptyEnvelope is returned when an envelope carries neither a frame nor a
// control update.
var ErrEmptyEnvelope = errors.New("envelope has no body")

// FrameFromSnapshot converts a world snapshot and the chart scale into a
// frame message.
func FrameFromSnapshot(s sim.Snapshot, scale chart.Scale) *pb.Frame {
	f := &pb.Frame{
		Tick:        uint64(s.Tick),
		ScaleX:      scale.X,
		ScaleY:      scale.Y,
		Controls:    ControlUpdate(s.Controls),
		Populations: make([]*pb.Population, len(s.Populations)),
	}
	for i, p := range s.Populations {
		pop := &pb.Population{
			Name:       p.Name,
			Color:      p.Color,
			Agents:     make([]*pb.Agent, len(p.Agents)),
			Sick:       int64(p.Sick),
			Collisions: int64(p.Collisions),
		}
		for j, a := range p.Agents {
			pop.Agents[j] = &pb.Agent{X: a.X, Y: a.Y, Radius: a.Radius, Health: pb.Health(a.Health)}
		}
		if p.Series != nil {
			for _, pt := range p.Series.Points() {
				pop.Samples = append(pop.Samples, &pb.Sample{Tick: int64(pt.Tick), Sick: int64(pt.Sick)})
			}
		}
		f.Populations[i] = pop
	}
	return f
}

// ControlUpdate converts control settings into their message.
func ControlUpdate(c sim.ControlSettings) *pb.ControlUpdate {
	return &pb.ControlUpdate{
		TransmissionModifier: c.TransmissionModifier,
		LockdownEnabled:      c.LockdownEnabled,
	}
}

// Controls converts a control message back into settings.
func Controls(c *pb.ControlUpdate) sim.ControlSettings {
	return sim.ControlSettings{
		TransmissionModifier: c.GetTransmissionModifier(),
		LockdownEnabled:      c.GetLockdownEnabled(),
	}
}

// EncodeFrame wraps f in an envelope and marshals it.
func EncodeFrame(f *pb.Frame) ([]byte, error) {
	payload, err := proto.Marshal(&pb.Envelope{Body: &pb.Envelope_Frame{Frame: f}})
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}
	return payload, nil
}

// EncodeControl wraps c in an envelope and marshals it.
func EncodeControl(c sim.ControlSettings) ([]byte, error) {
	payload, err := proto.Marshal(&pb.Envelope{Body: &pb.Envelope_Control{Control: ControlUpdate(c)}})
	if err != nil {
		return nil, fmt.Errorf("marshal control update: %w", err)
	}
	return payload, nil
}

// Decode unmarshals an envelope. Unknown fields are skipped; an agent with a
// health value outside the known states is an error.
func Decode(b []byte) (*pb.Envelope, error) {
	env := &pb.Envelope{}
	if err := proto.Unmarshal(b, env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.GetBody() == nil {
		return nil, ErrEmptyEnvelope
	}
	for _, p := range env.GetFrame().GetPopulations() {
		for i, a := range p.GetAgents() {
			if a.GetHealth() < pb.Health_SUSCEPTIBLE || a.GetHealth() > pb.Health_DEAD {
				return nil, fmt.Errorf("population %q agent %d: unknown health %d", p.GetName(), i, a.GetHealth())
			}
		}
	}
	return env, nil
}
