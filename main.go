package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"frota-api/global"
	"frota-api/initialize"
	"frota-api/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	srv := server.NewHTTP(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		global.Logger.Info().Msg("shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	global.Logger.Info().Str("addr", srv.Addr()).Msg("listening")
	if err := srv.ListenAndServe(); err != nil {
		global.Logger.Fatal().Err(err).Msg("server error")
	}
}
