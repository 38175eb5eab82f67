// Command platview plays a campaign in a window. It is a thin renderer and
// keyboard driver around core.Simulation.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/bubblebound/assets"
	"github.com/automoto/bubblebound/config"
	"github.com/automoto/bubblebound/core"
	"github.com/automoto/bubblebound/fonts"
	"github.com/automoto/bubblebound/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	campaignPath := flag.String("campaign", "", "YAML campaign file (built-in campaign when empty)")
	resume := flag.Bool("resume", false, "Start at the furthest level reached last time")
	scale := flag.Float64("scale", 1, "Window scale")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	campaign, err := loadCampaign(*campaignPath, cfg.World.TileSize)
	if err != nil {
		logger.Fatal("load campaign", zap.Error(err))
	}

	sim, err := core.NewSimulation(cfg, logger, campaign)
	if err != nil {
		logger.Fatal("start simulation", zap.Error(err))
	}

	progress := openProgress(logger)
	if *resume {
		if idx := progress.Furthest(); idx > 0 && idx < campaign.Len() {
			if err := sim.LoadLevel(idx); err != nil {
				logger.Warn("resume", zap.Error(err))
			}
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	game := newGame(sim, progress, logger)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(int(float64(w)**scale), int(float64(h)**scale))
	ebiten.SetWindowTitle("bubblebound")
	ebiten.SetTPS(cfg.Loop.TickRate)

	if err := ebiten.RunGame(game); err != nil && err != errQuit {
		logger.Error("run", zap.Error(err))
		os.Exit(1)
	}
}

func loadCampaign(path string, tileSize float64) (*leveldata.Campaign, error) {
	if path == "" {
		return assets.LoadCampaign(tileSize)
	}
	return leveldata.LoadCampaign(os.DirFS("."), path, tileSize)
}
