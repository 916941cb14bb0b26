package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"

	"hyspell/internal/config"
	"hyspell/internal/corrector"
	"hyspell/internal/repository"
	"hyspell/internal/server"
	"hyspell/internal/service"
	"hyspell/internal/suggestcache"
)

// Run loads configuration, builds the corrector and serves HTTP until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	var store VocabularyStore
	if cfg.Store.Enabled {
		vr, err := repository.NewVocabRepository(cfg.Store.Path, logger)
		if err != nil {
			return err
		}
		defer vr.Close()
		store = vr
	}

	vocab, err := LoadVocabulary(ctx, cfg, store, logger)
	if err != nil {
		return err
	}
	c := corrector.New(vocab, cfg.Corrector.Options()...)

	var cache service.Cache
	if cfg.Cache.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer client.Close()
		sc := suggestcache.New(client, cfg.Cache.TTL, c.Fingerprint())
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, serving without cache", slog.Any("error", err))
		} else {
			// результаты прошлых весов и словарей недостижимы, но занимают память до TTL
			if err := sc.FlushStale(ctx); err != nil {
				logger.Warn("suggestion cache cleanup failed", slog.Any("error", err))
			}
			logger.Info("suggestion cache enabled", slog.String("generation", c.Fingerprint()))
			cache = sc
		}
	}

	speller := service.NewSpeller(c, cache, logger)
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      server.NewHandler(speller, logger, cfg.Server.RequestTimeout),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr), slog.Int("vocabulary", vocab.Len()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
