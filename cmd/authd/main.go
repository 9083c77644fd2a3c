package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"

	"authd/initialize"
	"authd/server"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (env vars override)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		logger := initialize.NewLogger()
		logger.Fatal().Err(err).Msg("startup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Log.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTP(ctx, app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.Log.Fatal().Err(err).Msg("server stopped")
	}
}
