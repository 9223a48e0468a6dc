package scale

import (
	"encoding/json"
	"time"

	"phiCalc/internal/domain"
)

// OperationResponse — результат расчёта (для POST /api/v1/compute/:kind и истории).
type OperationResponse struct {
	ID        int             `json:"id,omitempty"`
	Kind      string          `json:"kind"`
	Params    json.RawMessage `json:"params"`
	Result    json.RawMessage `json:"result"`
	Cached    bool            `json:"cached"`
	Timestamp time.Time       `json:"timestamp"`
}

// HistoryResponse — ответ со списком расчётов.
type HistoryResponse struct {
	Items []OperationResponse `json:"items"`
}

// StatsResponse — число расчётов по видам.
type StatsResponse struct {
	Items []domain.KindCount `json:"items"`
}

// KindsResponse — поддерживаемые виды расчётов.
type KindsResponse struct {
	Kinds []string `json:"kinds"`
}

// rawJSON возвращает s как JSON; пустая или битая строка становится null.
func rawJSON(s string) json.RawMessage {
	if s == "" || !json.Valid([]byte(s)) {
		return json.RawMessage("null")
	}
	return json.RawMessage(s)
}

func toResponse(op domain.Operation) OperationResponse {
	return OperationResponse{
		ID:        op.ID,
		Kind:      op.Kind,
		Params:    rawJSON(op.Params),
		Result:    rawJSON(op.Result),
		Cached:    op.Cached,
		Timestamp: op.Timestamp,
	}
}
