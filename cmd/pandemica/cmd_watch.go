package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/realmfikri/pandemica/internal/sim"
	"github.com/realmfikri/pandemica/internal/wire"
	pb "github.com/realmfikri/pandemica/proto"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Connect to a running server, print frames and push control changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			url, _ := cmd.Flags().GetString("url")
			limit, _ := cmd.Flags().GetInt("frames")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", url, err)
			}
			defer conn.Close()
			logger.Info("connected", "url", url)

			sigCh := make(chan os.Signal, 1)
			notifySignals(sigCh)
			go func() {
				select {
				case sig := <-sigCh:
					logger.Info("disconnecting", "signal", sig.String())
				case <-ctx.Done():
				}
				conn.Close()
			}()

			pushed := false
			frames := 0
			for limit <= 0 || frames < limit {
				_, data, err := conn.ReadMessage()
				if err != nil {
					if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
						return nil
					}
					return fmt.Errorf("reading feed: %w", err)
				}
				env, err := wire.Decode(data)
				if err != nil {
					logger.Warn("ignoring malformed message", "err", err)
					continue
				}

				switch {
				case env.GetControl() != nil:
					current := wire.Controls(env.GetControl())
					printControls(cmd.OutOrStdout(), current)
					if pushed {
						continue
					}
					pushed = true
					update, changed := controlOverrides(cmd, current)
					if !changed {
						continue
					}
					payload, err := wire.EncodeControl(update)
					if err != nil {
						return err
					}
					if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
						return fmt.Errorf("sending controls: %w", err)
					}
					logger.Debug("sent controls", "transmission", update.TransmissionModifier, "lockdown", update.LockdownEnabled)
				case env.GetFrame() != nil:
					printFrame(cmd.OutOrStdout(), env.GetFrame())
					frames++
				}
			}
			return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		},
	}

	cmd.Flags().String("url", "ws://localhost:8080/ws", "Websocket feed to connect to")
	cmd.Flags().Float64("transmission", 1, "Transmission modifier to push, 0 to 1")
	cmd.Flags().Bool("lockdown", false, "Enable lockdown on the server")
	cmd.Flags().Int("frames", 0, "Stop after this many frames (0 watches until interrupted)")
	return cmd
}

// controlOverrides layers explicitly set flags over the server's current
// controls.
func controlOverrides(cmd *cobra.Command, current sim.ControlSettings) (sim.ControlSettings, bool) {
	update := current
	changed := false
	if cmd.Flags().Changed("transmission") {
		update.TransmissionModifier, _ = cmd.Flags().GetFloat64("transmission")
		changed = true
	}
	if cmd.Flags().Changed("lockdown") {
		update.LockdownEnabled, _ = cmd.Flags().GetBool("lockdown")
		changed = true
	}
	return update, changed
}

func printControls(w io.Writer, c sim.ControlSettings) {
	fmt.Fprintf(w, "controls: transmission=%.2f lockdown=%t\n", c.TransmissionModifier, c.LockdownEnabled)
}

func printFrame(w io.Writer, f *pb.Frame) {
	fmt.Fprintf(w, "tick %d", f.GetTick())
	for _, p := range f.GetPopulations() {
		fmt.Fprintf(w, " %s sick=%d collisions=%d", p.GetName(), p.GetSick(), p.GetCollisions())
	}
	fmt.Fprintln(w)
}
