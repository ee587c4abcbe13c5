package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"murojaat/internal/app/server/config"
	"murojaat/internal/fakeapi"
	"murojaat/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.WithLevel(conf.Env, conf.LogLevel)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	seed := fakeapi.DefaultSeed()
	if conf.SeedPath != "" {
		f, err := os.Open(conf.SeedPath)
		if err != nil {
			return err
		}
		seed, err = fakeapi.DecodeSeed(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	store := fakeapi.NewStore()
	if err := seed.Apply(store); err != nil {
		return err
	}

	api := fakeapi.New(store, []byte(conf.Secret), log)
	api.Tokens().SetTTL(conf.TokenTTL)

	srv := &http.Server{
		Addr:    conf.RunAddress,
		Handler: api.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("murojaat test backend started", slog.String("address", conf.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
