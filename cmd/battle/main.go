package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Namek/battle-tactics/internal/engine"
	"github.com/Namek/battle-tactics/internal/version"
	"github.com/Namek/battle-tactics/pkg/api"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/Namek/battle-tactics/pkg/maps"
	"github.com/sirupsen/logrus"
)

// Report is what the CLI writes to stdout after a scripted run.
type Report struct {
	Map     string              `json:"map" msgpack:"map"`
	Steps   []engine.StepResult `json:"steps" msgpack:"steps"`
	Final   api.FrameView       `json:"final" msgpack:"final"`
	Aborted string              `json:"aborted,omitempty" msgpack:"aborted,omitempty"`
}

func main() {
	// 1. Флаги
	var configPath, mapRef, scriptPath, format string
	var printMap bool
	flag.StringVar(&configPath, "config", "", "Path to a YAML rules file (defaults when empty)")
	flag.StringVar(&mapRef, "map", "", "Built-in map name or YAML map file (script's map, then map1)")
	flag.StringVar(&scriptPath, "script", "", "YAML match script to play")
	flag.StringVar(&format, "format", "json", "Output encoding: json or msgpack")
	flag.BoolVar(&printMap, "print-map", false, "Print the map as ASCII and exit")
	flag.Parse()

	// Логи в stderr, stdout занят отчётом
	logger.InitWithOutput(os.Stderr)
	logger.Log.WithFields(version.Info().Fields()).Info("Starting battle CLI...")

	// 2. Конфигурация
	cfg := engine.NewConfig()
	if configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(configPath); err != nil {
			logger.Log.Fatal("Failed to load config: ", err)
		}
	}
	wire, err := api.ParseFormat(format)
	if err != nil {
		logger.Log.Fatal(err)
	}

	var script engine.Script
	if scriptPath != "" {
		if script, err = engine.LoadScript(scriptPath); err != nil {
			logger.Log.Fatal("Failed to load script: ", err)
		}
	}
	if mapRef == "" {
		mapRef = script.Map
	}

	// 3. Карта
	m, err := maps.Open(mapRef, cfg.TileSize)
	if err != nil {
		logger.Log.Fatal("Failed to load map: ", err)
	}
	if printMap {
		for _, row := range m.ASCII() {
			fmt.Println(row)
		}
		return
	}
	if scriptPath == "" {
		logger.Log.Fatal("-script is required")
	}

	// 4. Прогон
	svc, err := engine.NewService(m, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to start match: ", err)
	}
	report := Report{Map: m.Name}
	report.Steps, err = svc.RunScript(script)
	if err != nil {
		report.Aborted = err.Error()
		logger.Log.WithError(err).Warn("Script aborted.")
	}
	report.Final = svc.View()

	logger.Log.WithFields(logrus.Fields{
		"map":    m.Name,
		"steps":  len(report.Steps),
		"round":  report.Final.Round,
		"phase":  report.Final.Phase,
		"winner": report.Final.Winner,
	}).Info("Script finished.")

	out, err := api.Encode(wire, report)
	if err != nil {
		logger.Log.Fatal("Failed to encode report: ", err)
	}
	if wire == api.FormatJSON {
		out = append(out, '\n')
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Log.Fatal("Failed to write report: ", err)
	}
}
