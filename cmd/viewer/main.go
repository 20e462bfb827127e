package main

import (
	"flag"

	"github.com/Namek/battle-tactics/internal/engine"
	"github.com/Namek/battle-tactics/internal/version"
	"github.com/Namek/battle-tactics/internal/viewer"
	"github.com/Namek/battle-tactics/internal/viewer/controls"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/Namek/battle-tactics/pkg/maps"
	"github.com/hajimehoshi/ebiten/v2"
)

func init() {
	logger.Init()
}

func main() {
	var configPath, mapRef string
	flag.StringVar(&configPath, "config", "", "Path to a YAML rules file (defaults when empty)")
	flag.StringVar(&mapRef, "map", "map1", "Built-in map name or YAML map file")
	flag.Parse()

	logger.Log.WithFields(version.Info().Fields()).Info("Starting viewer...")

	cfg := engine.NewConfig()
	if configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(configPath); err != nil {
			logger.Log.Fatal("Failed to load config: ", err)
		}
	}
	m, err := maps.Open(mapRef, cfg.TileSize)
	if err != nil {
		logger.Log.Fatal("Failed to load map: ", err)
	}

	session, err := controls.NewSession(m, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to start match: ", err)
	}
	v := viewer.New(session)

	w, h := v.Size()
	ebiten.SetWindowTitle("battle-tactics: " + m.Name)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(v); err != nil {
		logger.Log.Fatal(err)
	}
}
