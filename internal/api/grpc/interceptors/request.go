package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDKey — ключ метаданных с id запроса (как заголовок X-Request-ID в HTTP).
const RequestIDKey = "x-request-id"

// requestID берёт id из входящих метаданных или генерирует новый.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDKey); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// clientCode — коды, вызванные самим запросом; логируются как Warn.
func clientCode(c codes.Code) bool {
	switch c {
	case codes.InvalidArgument, codes.NotFound, codes.Canceled, codes.Unimplemented:
		return true
	}
	return false
}

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, request_id, latency_ms и grpc_code.
// Ошибки запроса идут в Warn, серверные в Error.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := requestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id))

		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := []any{"method", info.FullMethod, "request_id", id, "latency_ms", time.Since(start).Milliseconds()}

		st, _ := status.FromError(err)
		attrs = append(attrs, "grpc_code", st.Code().String())
		switch {
		case err == nil:
			log.Info("grpc request", attrs...)
		case clientCode(st.Code()):
			log.Warn("grpc request", append(attrs, "error", st.Message())...)
		default:
			log.Error("grpc request", append(attrs, "error", st.Message())...)
		}
		return resp, err
	}
}
