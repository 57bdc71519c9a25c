package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/realmfikri/pandemica/internal/config"
	"github.com/realmfikri/pandemica/internal/logging"
	"github.com/realmfikri/pandemica/internal/sim"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pandemica",
		Short: "Agent-based epidemic simulation",
		Long: `pandemica simulates populations of moving agents that collide, pass on an
infection, and recover or die, and records the number of sick agents over time.

Run it headless to produce a chart and video, or serve a live websocket feed.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newServeCmd(),
		newWatchCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pandemica version %s\n", version)
		},
	}
}

// loadConfig resolves the config and logger shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

// buildWorld creates every configured population from one shared random
// source, so a fixed seed replays the whole world.
func buildWorld(cfg *config.Config, logger *slog.Logger) (*sim.World, error) {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Debug("building world", "seed", seed, "populations", len(cfg.Populations))

	members := make([]sim.Member, len(cfg.Populations))
	for i, pc := range cfg.Populations {
		pop, err := sim.New(cfg.Params(i), rng, sim.WithLogger(logger.With("population", pc.Name)))
		if err != nil {
			return nil, fmt.Errorf("population %q: %w", pc.Name, err)
		}
		members[i] = sim.Member{Name: pc.Name, Color: pc.Color, Population: pop}
	}
	return sim.NewWorld(logger, members...)
}
