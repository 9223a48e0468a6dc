package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"phiCalc/internal/domain"
)

// historyLimit — сколько последних расчётов отдаёт GetHistory.
const historyLimit = 100

// operationDoc — документ в коллекции расчётов. ID в домене int (совместимость с PG), при чтении остаётся 0.
type operationDoc struct {
	Kind      string    `bson:"kind"`
	Params    string    `bson:"params"`
	Result    string    `bson:"result"`
	CreatedAt time.Time `bson:"created_at"`
}

// OperationRepo реализует ports.IOperationRepository для MongoDB.
type OperationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewOperationRepo возвращает репозиторий расчётов.
func NewOperationRepo(client *Client, log *slog.Logger) *OperationRepo {
	return &OperationRepo{client: client, log: log}
}

// SaveOperation сохраняет расчёт в коллекцию.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	doc := operationDoc{
		Kind:      op.Kind,
		Params:    op.Params,
		Result:    op.Result,
		CreatedAt: op.Timestamp,
	}
	if _, err := r.client.Coll().InsertOne(ctx, doc); err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает последние расчёты (новые сначала).
func (r *OperationRepo) GetHistory(ctx context.Context) ([]domain.Operation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(historyLimit)
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []operationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Operation, 0, len(docs))
	for _, d := range docs {
		list = append(list, domain.Operation{
			Kind:      d.Kind,
			Params:    d.Params,
			Result:    d.Result,
			Timestamp: d.CreatedAt,
		})
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
