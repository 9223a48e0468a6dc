package scale

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"phiCalc/internal/domain"
	"phiCalc/internal/ports"
)

// Server реализует ScaleServiceServer поверх use case шкал.
type Server struct {
	UnimplementedScaleServiceServer
	uc  ports.IScaleUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер шкал.
func New(uc ports.IScaleUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Compute считает вид из поля kind с параметрами из поля params.
func (s *Server) Compute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	kind := fields["kind"].GetStringValue()
	if kind == "" {
		return nil, status.Error(codes.InvalidArgument, "kind is required")
	}

	var params []byte
	if p, ok := fields["params"]; ok {
		if _, isNull := p.GetKind().(*structpb.Value_NullValue); !isNull {
			raw, err := json.Marshal(p.AsInterface())
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "params: %v", err)
			}
			params = raw
		}
	}

	op, err := s.uc.Compute(ctx, kind, params)
	if err != nil {
		return nil, s.toStatus("compute failed", err)
	}
	out, err := operationStruct(op)
	if err != nil {
		s.log.Error("encode operation failed", "kind", kind, "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return out, nil
}

// History возвращает историю расчётов в поле items.
func (s *Server) History(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		return nil, s.toStatus("history failed", err)
	}
	items := make([]any, 0, len(list))
	for i := range list {
		item, err := operationMap(&list[i])
		if err != nil {
			s.log.Error("encode operation failed", "id", list[i].ID, "error", err)
			return nil, status.Errorf(codes.Internal, "%v", err)
		}
		items = append(items, item)
	}
	out, err := structpb.NewStruct(map[string]any{"items": items})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return out, nil
}

// toStatus переводит ошибку use case в gRPC-статус.
func (s *Server) toStatus(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownKind):
		return status.Errorf(codes.NotFound, "%v", err)
	case errors.Is(err, domain.ErrInvalidParams):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	}
	s.log.Error(msg, "error", err)
	return status.Errorf(codes.Internal, "%v", err)
}

// operationMap раскрывает JSON-поля операции в обычные значения для structpb.
func operationMap(op *domain.Operation) (map[string]any, error) {
	var params, result any
	if op.Params != "" {
		if err := json.Unmarshal([]byte(op.Params), &params); err != nil {
			return nil, err
		}
	}
	if op.Result != "" {
		if err := json.Unmarshal([]byte(op.Result), &result); err != nil {
			return nil, err
		}
	}
	return map[string]any{
		"id":        float64(op.ID),
		"kind":      op.Kind,
		"params":    params,
		"result":    result,
		"cached":    op.Cached,
		"timestamp": op.Timestamp.UTC().Format(time.RFC3339Nano),
	}, nil
}

func operationStruct(op *domain.Operation) (*structpb.Struct, error) {
	m, err := operationMap(op)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}
