package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"phiCalc/internal/domain"
)

// IScaleUseCase — бизнес-логика шкал (расчёт, история, обработка событий из Kafka).
type IScaleUseCase interface {
	Compute(ctx context.Context, kind string, params []byte) (*domain.Operation, error)
	History(ctx context.Context) ([]domain.Operation, error)
	HandleOperationEvent(ctx context.Context, op domain.Operation) error
}
