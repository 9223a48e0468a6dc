package scale

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"phiCalc/internal/domain"
)

// cacheKey формирует читаемый ключ кэша: вид и канонические параметры,
// например `spacing {"base":0.25,"precision":3}`.
func cacheKey(kind string, req request) (string, error) {
	tail, err := req.key()
	if err != nil {
		return "", err
	}
	return kind + " " + tail, nil
}

// Compute — разбирает параметры, проверяет кэш; при промахе считает, сохраняет в БД и в кэш,
// публикует событие в брокер.
func (u *UseCase) Compute(ctx context.Context, kind string, params []byte) (*domain.Operation, error) {
	req, err := decodeRequest(kind, params)
	if err != nil {
		return nil, err
	}
	canonical, err := canonicalJSON(req)
	if err != nil {
		return nil, err
	}
	key, err := cacheKey(kind, req)
	if err != nil {
		return nil, err
	}

	cached, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("cache get", "key", key, "error", err)
	} else if found {
		u.log.Debug("cache hit", "key", key)
		return &domain.Operation{
			Kind:      kind,
			Params:    canonical,
			Result:    cached,
			Cached:    true,
			Timestamp: time.Now(),
		}, nil
	}

	out, err := req.compute(u.phi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	result, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %s result: %w", domain.ErrInvalidParams, kind, err)
	}

	op := domain.Operation{
		Kind:      kind,
		Params:    canonical,
		Result:    string(result),
		Timestamp: time.Now(),
	}

	if err := u.repo.SaveOperation(ctx, op); err != nil {
		return nil, err
	}
	u.log.Info("operation saved", "key", key)

	if err := u.cache.Set(ctx, key, op.Result); err != nil {
		return nil, err
	}

	value, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("operation published", "key", key)
	}

	return &op, nil
}

// History — история расчётов (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.Operation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleOperationEvent вызывается консьюмером при получении события из топика operations.
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("operation stored to click", "kind", op.Kind, "params", op.Params)

	return nil
}
