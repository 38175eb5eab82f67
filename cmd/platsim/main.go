// Command platsim runs a campaign without a window. The player is driven by
// a simple autopilot so enemy AI, stuck recovery and level progression can
// be watched in the logs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/automoto/bubblebound/assets"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/core"
	"github.com/automoto/bubblebound/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	campaignPath := flag.String("campaign", "", "YAML campaign file (built-in campaign when empty)")
	tmxDir := flag.String("tmx-dir", "", "Directory of .tmx levels played in file name order")
	ticks := flag.Int("ticks", 20000, "Stop after this many ticks (0 = no limit)")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	seed := flag.Int64("seed", -1, "Override the random seed (-1 keeps the config value)")
	report := flag.Bool("report", false, "Print a reachability report for every level and exit")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *seed >= 0 {
		cfg.World.Seed = *seed
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	campaign, err := loadCampaign(*campaignPath, *tmxDir, cfg.World.TileSize)
	if err != nil {
		logger.Fatal("load campaign", zap.Error(err))
	}

	if *report {
		for _, line := range reachabilityReport(campaign) {
			fmt.Println(line)
		}
		return
	}

	sim, err := core.NewSimulation(cfg, logger, campaign)
	if err != nil {
		logger.Fatal("start simulation", zap.Error(err))
	}
	sim.Observe(logEvents(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *realtime {
		loop := core.NewGameLoop(sim, cfg.Loop.TickRate, cfg.Loop.MaxTimeScale, logger)
		loop.BeforeTick = func(s *core.Simulation) { s.SetInput(autopilot(s)) }
		loop.AfterTick = func(s *core.Simulation) bool {
			return *ticks == 0 || s.Stats().Ticks < uint64(*ticks)
		}
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("game loop", zap.Error(err))
		}
	} else {
		runFast(ctx, sim, *ticks)
	}

	st := sim.Stats()
	logger.Info("simulation ended",
		zap.Uint64("ticks", st.Ticks),
		zap.Int("level", sim.LevelIndex()),
		zap.Bool("campaign_complete", sim.Finished()),
		zap.Bool("game_over", sim.GameOver()),
		zap.Int("traps", st.Traps),
		zap.Int("pops", st.Pops),
		zap.Int("releases", st.Releases),
		zap.Int("player_hits", st.PlayerHits),
		zap.Int("relocations", st.Relocations),
		zap.Int("jumps", st.Jumps),
		zap.Int("wraps", st.Wraps),
	)
}

// runFast ticks with a nominal time scale as quickly as the CPU allows.
func runFast(ctx context.Context, sim *core.Simulation, limit int) {
	for i := 0; limit == 0 || i < limit; i++ {
		if ctx.Err() != nil || sim.Finished() || sim.GameOver() {
			return
		}
		sim.SetInput(autopilot(sim))
		sim.Tick(1)
	}
}

func loadCampaign(campaignPath, tmxDir string, tileSize float64) (*leveldata.Campaign, error) {
	switch {
	case tmxDir != "":
		return leveldata.LoadTMXDir(os.DirFS(tmxDir), ".")
	case campaignPath != "":
		return leveldata.LoadCampaign(os.DirFS("."), campaignPath, tileSize)
	default:
		return assets.LoadCampaign(tileSize)
	}
}
