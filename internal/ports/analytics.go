package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"phiCalc/internal/domain"
)

// IOperationAnalytics — запись расчётов в хранилище для аналитики (ClickHouse).
type IOperationAnalytics interface {
	WriteOperation(ctx context.Context, op domain.Operation) error
}

// IOperationStats — агрегаты по расчётам из хранилища аналитики.
type IOperationStats interface {
	CountByKind(ctx context.Context) ([]domain.KindCount, error)
}
