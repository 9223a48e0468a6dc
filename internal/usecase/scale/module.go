package scale

import (
	"log/slog"

	"phiCalc/internal/pkg/golden"
	"phiCalc/internal/ports"
)

// UseCase — бизнес-логика шкал: кэш-aside поверх ядра golden, история, события.
type UseCase struct {
	phi       *golden.PowerCache
	repo      ports.IOperationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс. phi == nil допустим: степени считаются без мемоизации.
func New(phi *golden.PowerCache, repo ports.IOperationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.IOperationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{
		phi:       phi,
		repo:      repo,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}
