package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/lmittmann/tint"
)

func Run(ctx context.Context) error {
	logger := slog.New(tint.NewHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	h, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h,
	}

	go func() {
		<-ctx.Done()
		slog.InfoContext(ctx, "shutting down")
		_ = srv.Shutdown(context.Background())
	}()

	slog.Info("listening", slog.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
