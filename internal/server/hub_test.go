package server

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/sim"
	"github.com/realmfikri/pandemica/internal/wire"
	pb "github.com/realmfikri/pandemica/proto"
)

func encodeControl(t *testing.T, c sim.ControlSettings) []byte {
	t.Helper()
	payload, err := wire.EncodeControl(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return payload
}

func newTestHub(t *testing.T) (*Hub, *sim.World) {
	t.Helper()
	pop, err := sim.New(sim.DefaultParams(), rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	world, err := sim.NewWorld(nil, sim.Member{Name: "mobile", Color: "#ff9933", Population: pop})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewHub(world, chart.NewAdapter(800, 700, 600, 35), nil), world
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) *pb.Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	env, err := wire.Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return env
}

func TestHandlerSendsControlsAndAppliesUpdates(t *testing.T) {
	hub, world := newTestHub(t)
	srv := httptest.NewServer(NewMux(hub, "", ""))
	defer srv.Close()

	conn := dial(t, srv)

	env := readEnvelope(t, conn)
	if env.GetControl() == nil || env.GetControl().GetTransmissionModifier() != 1 {
		t.Fatalf("expected initial controls with modifier 1, got %v", env)
	}

	update := encodeControl(t, sim.ControlSettings{TransmissionModifier: 0.3, LockdownEnabled: true})
	if err := conn.WriteMessage(websocket.BinaryMessage, update); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	env = readEnvelope(t, conn)
	if c := env.GetControl(); c.GetTransmissionModifier() != 0.3 || !c.GetLockdownEnabled() {
		t.Fatalf("expected echoed controls, got %v", env)
	}
	if got := world.Controls(); got.TransmissionModifier != 0.3 || !got.LockdownEnabled {
		t.Fatalf("expected world controls to be updated, got %+v", got)
	}
}

func TestHandlerIgnoresMalformedMessages(t *testing.T) {
	hub, world := newTestHub(t)
	srv := httptest.NewServer(NewMux(hub, "", ""))
	defer srv.Close()

	conn := dial(t, srv)
	readEnvelope(t, conn)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{0xff}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	update := encodeControl(t, sim.ControlSettings{TransmissionModifier: 0.5})
	if err := conn.WriteMessage(websocket.BinaryMessage, update); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	env := readEnvelope(t, conn)
	if env.GetControl().GetTransmissionModifier() != 0.5 {
		t.Fatalf("expected connection to survive a malformed message, got %v", env)
	}
	if world.Controls().TransmissionModifier != 0.5 {
		t.Fatalf("expected modifier 0.5, got %v", world.Controls().TransmissionModifier)
	}
}

func TestBroadcastFrame(t *testing.T) {
	hub, world := newTestHub(t)
	srv := httptest.NewServer(NewMux(hub, "", ""))
	defer srv.Close()

	conn := dial(t, srv)
	readEnvelope(t, conn)

	for i := 0; i < 2; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	hub.Broadcast(world.Snapshot())

	env := readEnvelope(t, conn)
	frame := env.GetFrame()
	if frame == nil {
		t.Fatalf("expected a frame, got %v", env)
	}
	if frame.GetTick() != 2 {
		t.Fatalf("expected tick 2, got %d", frame.GetTick())
	}
	if len(frame.GetPopulations()) != 1 || len(frame.GetPopulations()[0].GetAgents()) != 50 {
		t.Fatalf("expected one population of 50 agents, got %v", frame.GetPopulations())
	}
	want := chart.ComputeScale(600, world.Snapshot().Series()...)
	if frame.GetScaleX() != want.X || frame.GetScaleY() != want.Y {
		t.Fatalf("expected scale %+v, got %vx%v", want, frame.GetScaleX(), frame.GetScaleY())
	}
}

func TestHubDropsClosedClients(t *testing.T) {
	hub, world := newTestHub(t)
	srv := httptest.NewServer(NewMux(hub, "", ""))
	defer srv.Close()

	conn := dial(t, srv)
	readEnvelope(t, conn)
	if hub.Clients() != 1 {
		t.Fatalf("expected one client, got %d", hub.Clients())
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 && time.Now().Before(deadline) {
		hub.Broadcast(world.Snapshot())
		time.Sleep(10 * time.Millisecond)
	}
	if hub.Clients() != 0 {
		t.Fatalf("expected closed client to be dropped, got %d", hub.Clients())
	}
}

func TestNewMuxServesStaticDir(t *testing.T) {
	hub, _ := newTestHub(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>pandemica</h1>"), 0644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	srv := httptest.NewServer(NewMux(hub, dir, ""))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestBroadcastDropsStalledClient(t *testing.T) {
	params := sim.DefaultParams()
	params.Size = 5000
	pop, err := sim.New(params, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	world, err := sim.NewWorld(nil, sim.Member{Name: "crowd", Color: "#ff9933", Population: pop})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hub := NewHub(world, chart.NewAdapter(800, 700, 600, 35), nil)
	hub.writeTimeout = 50 * time.Millisecond
	srv := httptest.NewServer(NewMux(hub, "", ""))
	defer srv.Close()

	// The client never reads, so the socket buffers eventually fill.
	dial(t, srv)
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Clients() != 1 {
		t.Fatalf("expected one client, got %d", hub.Clients())
	}

	snap := world.Snapshot()
	for i := 0; i < 1000 && hub.Clients() > 0; i++ {
		start := time.Now()
		hub.Broadcast(snap)
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Fatalf("expected broadcast to give up on a stalled client, blocked for %v", elapsed)
		}
	}
	if hub.Clients() != 0 {
		t.Fatalf("expected stalled client to be dropped, got %d", hub.Clients())
	}
}
