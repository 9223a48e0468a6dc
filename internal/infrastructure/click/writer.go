package click

import (
	"context"
	"fmt"

	"phiCalc/internal/domain"
	"phiCalc/internal/ports"
)

var (
	_ ports.IOperationAnalytics = (*OperationWriter)(nil)
	_ ports.IOperationStats     = (*OperationWriter)(nil)
)

const operationsAnalyticsFull = "default.phi_operations"

// OperationWriter пишет расчёты в ClickHouse для аналитики (GROUP BY kind, по времени).
type OperationWriter struct {
	db *Client
}

// NewOperationWriter создаёт писатель расчётов для аналитики.
func NewOperationWriter(db *Client) *OperationWriter {
	return &OperationWriter{db: db}
}

// EnsureTable создаёт таблицу аналитики, если её ещё нет. Вызывается один раз при старте.
func (w *OperationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			kind LowCardinality(String),
			params String,
			result String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, kind)
		PARTITION BY toYYYYMM(created_at)`,
		operationsAnalyticsFull,
	)
	if _, err := w.db.DB().ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create analytics table: %w", err)
	}
	return nil
}

// WriteOperation реализует ports.IOperationAnalytics: пишет один расчёт в ClickHouse.
func (w *OperationWriter) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (kind, params, result, created_at) VALUES (?, ?, ?, ?)",
		operationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query, op.Kind, op.Params, op.Result, op.Timestamp)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// CountByKind возвращает число расчётов по видам (по убыванию).
func (w *OperationWriter) CountByKind(ctx context.Context) ([]domain.KindCount, error) {
	query := fmt.Sprintf(
		"SELECT kind, count() AS n FROM %s GROUP BY kind ORDER BY n DESC, kind",
		operationsAnalyticsFull,
	)
	rows, err := w.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by kind: %w", err)
	}
	defer rows.Close()
	var out []domain.KindCount
	for rows.Next() {
		var kc domain.KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, err
		}
		out = append(out, kc)
	}
	return out, rows.Err()
}
