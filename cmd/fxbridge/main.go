package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"FXBridge/internal/collector"
	"FXBridge/internal/config"
	"FXBridge/internal/logger"
	"FXBridge/internal/pipeline"
	"FXBridge/internal/recorder"
	"FXBridge/internal/scheduler"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional
	_ = godotenv.Load()

	lg, done := logger.New()
	defer done()
	lg.Info("FXBridge starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		lg.Error("load config", zap.Error(err))
		return 1
	}
	if err := cfg.Validate(); err != nil {
		lg.Error("config validation", zap.Error(err))
		return 1
	}

	pair := cfg.TradingPair()
	fetcher := collector.NewECBFetcher(cfg.Feed.URL, cfg.Proxy, cfg.FetchTimeout())
	lg.Info("data source", zap.String("name", fetcher.Name()), zap.String("url", cfg.Feed.URL))
	col := collector.NewCollector(fetcher, pair, lg)

	var rec recorder.Recorder
	if os.Getenv("DRY_RUN") == "true" {
		lg.Info("DRY_RUN enabled, rows will not be saved")
		rec = recorder.NewNoopRecorder()
	} else {
		cr, err := recorder.NewCSVRecorder(cfg.Output.CSVPath, lg)
		if err != nil {
			lg.Error("init csv recorder", zap.Error(err))
			return 1
		}
		rec = cr
	}
	defer rec.Close()

	p := pipeline.New(col, rec, pipeline.Options{
		Pair:        pair,
		Policy:      cfg.FillPolicy(),
		SummaryRows: cfg.Output.SummaryRows,
		PDFPath:     cfg.Charts.PDFPath,
		XLSXPath:    cfg.Charts.XLSXPath,
		Out:         os.Stdout,
	}, lg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Schedule.Cron == "" {
		if _, err := p.Run(ctx); err != nil {
			reportFailure(lg, err)
			return 1
		}
		return 0
	}

	sched := scheduler.NewScheduler(ctx, p, lg)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		lg.Error("register cron task", zap.Error(err))
		return 1
	}
	sched.Start()

	if os.Getenv("RUN_ON_START") == "true" {
		lg.Info("RUN_ON_START enabled, executing batch now")
		go sched.RunNow()
	}

	lg.Info("FXBridge is running. Press Ctrl+C to stop.")
	<-ctx.Done()

	lg.Info("shutdown signal received, stopping...")
	sched.Stop()
	lg.Info("FXBridge stopped")
	return 0
}

func reportFailure(lg *zap.Logger, err error) {
	var fetchErr *collector.FetchError
	var parseErr *collector.ParseError
	switch {
	case errors.As(err, &fetchErr):
		lg.Error("exchange rate feed unavailable, nothing written",
			zap.String("url", fetchErr.URL), zap.Int("status", fetchErr.StatusCode), zap.Error(err))
	case errors.As(err, &parseErr):
		lg.Error("exchange rate feed malformed, nothing written", zap.Error(err))
	default:
		lg.Error("run failed", zap.Error(err))
	}
}
