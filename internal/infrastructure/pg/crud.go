package pg

import (
	"context"
	"log/slog"

	"phiCalc/internal/domain"
)

// historyLimit — сколько последних расчётов отдаёт GetHistory.
const historyLimit = 100

// OperationRepo реализует ports.IOperationRepository для PostgreSQL.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает репозиторий расчётов.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	return &OperationRepo{db: db, log: log}
}

// SaveOperation сохраняет расчёт в БД.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO phi_operations (kind, params, result, created_at)
		 VALUES ($1, $2, $3, $4)`,
		op.Kind, op.Params, op.Result, op.Timestamp)
	if err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние расчёты (новые сначала).
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, params, result, created_at
		 FROM phi_operations ORDER BY created_at DESC, id DESC LIMIT $1`, historyLimit)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Operation
	for rows.Next() {
		var op domain.Operation
		if err := rows.Scan(&op.ID, &op.Kind, &op.Params, &op.Result, &op.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
