package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	"phiCalc/internal/api/grpc/interceptors"
	"phiCalc/internal/api/grpc/scale"
	"phiCalc/internal/ports"
)

// GrpcConfig — настройки gRPC-сервера. Переменные: PHICALC_GRPC_HOST, PHICALC_GRPC_PORT.
type GrpcConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c GrpcConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует ScaleService. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
func NewServer(addr string, uc ports.IScaleUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	scale.RegisterScaleServiceServer(s, scale.New(uc, log))
	return &Server{grpc: s, addr: addr}
}

// Serve принимает соединения на готовом listener (блокируется).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
