package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sopets-web/internal/platform/config"
	"sopets-web/internal/platform/logger"
	"sopets-web/internal/server"
)

// @title SoPets Web API
// @version 0.1.0
// @description Backend del sitio de SoPets: registro beta, captura de emails, login con Google y mascotas de muestra.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	cfg, err := config.LoadAPI()
	if err != nil {
		log.Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}
