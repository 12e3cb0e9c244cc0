package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sopets-web/internal/platform/config"
	"sopets-web/internal/platform/logger"
	"sopets-web/internal/platform/telemetry"
	"sopets-web/internal/router"
)

const shutdownTimeout = 10 * time.Second

// Run levanta el API con la config dada y bloquea hasta que ctx se cancela
// (o el listener falla). Cierra stores y tracer al salir.
func Run(ctx context.Context, cfg config.API, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, "sopets-web")
	if err != nil {
		return err
	}

	opts, closeStores, err := router.FromConfig(ctx, cfg, log)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("server error: %w", err)
		}
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		runErr,
		srv.Shutdown(sctx),
		closeStores(sctx),
		shutdownTracing(sctx),
	)
}
