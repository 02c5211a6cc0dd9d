package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"jarvis/internal/agent"
	"jarvis/internal/lexicon"
	"jarvis/internal/state"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	addr := cli.StringP("addr", "a", "", "Listen address (host:port)")
	statePath := cli.StringP("state", "s", "", "State file path")
	devicesPath := cli.StringP("devices", "d", "", "Device lexicon path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)
	if *addr == "" {
		*addr = envOr("JARVIS_ADDR", ":7071")
	}
	if *statePath == "" {
		*statePath = envOr("JARVIS_STATE", "data/state.json")
	}
	if *devicesPath == "" {
		*devicesPath = envOr("JARVIS_DEVICES", "data/devices.json")
	}

	devices, err := lexicon.LoadDevices(*devicesPath)
	if err != nil {
		log.Error("Failed to load device lexicon", "path", *devicesPath, "err", err)
		os.Exit(1)
	}
	log.Debug("Loaded device lexicon", "canonical", len(devices.Canonical), "aliases", len(devices.Aliases))

	store := state.Open(*statePath)
	log.Debug("Loaded state", "path", *statePath)

	a := agent.New(store, devices)
	hub := agent.NewHub()

	if *logLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	agent.SetupRoutes(r, a, hub)

	log.Info("Boot up - successful", "addr", *addr)

	if err := r.Run(*addr); err != nil {
		log.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
