// Package stats периодически выгружает счётчики расчётов из аналитики в метрики.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"phiCalc/internal/ports"
)

// Config — расписание выгрузки. Переменная: PHICALC_STATS_SCHEDULE (cron или @every 1m).
type Config struct {
	Schedule string `envconfig:"SCHEDULE" default:"@every 1m"`
}

// Validate проверяет расписание.
func (c Config) Validate() error {
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("stats schedule %q: %w", c.Schedule, err)
	}
	return nil
}

// Sink принимает число расчётов вида kind.
type Sink func(kind string, count uint64)

// Reporter читает CountByKind и отдаёт результат в Sink.
type Reporter struct {
	stats ports.IOperationStats
	sink  Sink
	log   *slog.Logger
}

// New создаёт выгрузчик.
func New(stats ports.IOperationStats, sink Sink, log *slog.Logger) *Reporter {
	return &Reporter{stats: stats, sink: sink, log: log}
}

// Refresh выгружает счётчики один раз.
func (r *Reporter) Refresh(ctx context.Context) error {
	counts, err := r.stats.CountByKind(ctx)
	if err != nil {
		return fmt.Errorf("count by kind: %w", err)
	}
	for _, c := range counts {
		r.sink(c.Kind, c.Count)
	}
	r.log.Debug("stats refreshed", "kinds", len(counts))
	return nil
}

// Run выгружает счётчики по расписанию cfg.Schedule до отмены ctx.
func (r *Reporter) Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	schedule, _ := cron.ParseStandard(cfg.Schedule)

	c := cron.New()
	c.Schedule(schedule, cron.FuncJob(func() {
		if err := r.Refresh(ctx); err != nil {
			r.log.Warn("stats refresh failed", "error", err)
		}
	}))
	c.Start()
	r.log.Info("stats reporter started", "schedule", cfg.Schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}
