package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"mergington/internal/adapters/discord"
	"mergington/internal/adapters/httpapi"
	"mergington/internal/application"
	"mergington/internal/config"
	"mergington/internal/infrastructure/i18n"
	"mergington/internal/infrastructure/logger"
	"mergington/internal/infrastructure/memory"
	"mergington/internal/infrastructure/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mergington: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	activityRepo := memory.NewActivityRepository(seed)
	log.Info("roster loaded", zap.Int("activities", len(seed.Activities)), zap.String("seed_file", cfg.SeedFile))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.New(reg)
	for _, a := range seed.Activities {
		recorder.SetParticipants(a.Name, len(a.Participants))
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, log)
	activityUC := application.NewActivityService(activityRepo, translator, recorder, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DiscordEnabled() {
		bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordGuildID, activityUC, translator, log)
		if err != nil {
			return err
		}
		if err := bot.Open(); err != nil {
			return err
		}
		defer func() {
			if err := bot.Close(); err != nil {
				log.Warn("discord close", zap.Error(err))
			}
		}()
	}

	handler := httpapi.NewHandler(activityUC, translator, reg, log)
	srv := httpapi.NewServer(cfg.HTTPAddr, handler.Routes(), log)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadSeed(path string) (memory.Seed, error) {
	if path == "" {
		return memory.DefaultSeed()
	}
	return memory.LoadSeedFile(path)
}
