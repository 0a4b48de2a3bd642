package main

import (
	"flag"
	"os"

	"github.com/20225587/Tasker/global"
	"github.com/20225587/Tasker/initialize"
	"github.com/20225587/Tasker/server"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	// .env feeds viper-expanded settings in development; absence is fine.
	_ = godotenv.Load()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
