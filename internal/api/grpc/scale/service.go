package scale

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Полные имена методов ScaleService.
const (
	ServiceName       = "phicalc.v1.ScaleService"
	ComputeFullMethod = "/" + ServiceName + "/Compute"
	HistoryFullMethod = "/" + ServiceName + "/History"
)

// ScaleServiceServer — серверная сторона ScaleService.
// Compute принимает {"kind": ..., "params": {...}}, History возвращает {"items": [...]}.
type ScaleServiceServer interface {
	Compute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	History(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedScaleServiceServer отвечает Unimplemented на все методы.
type UnimplementedScaleServiceServer struct{}

func (UnimplementedScaleServiceServer) Compute(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Compute not implemented")
}

func (UnimplementedScaleServiceServer) History(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method History not implemented")
}

// RegisterScaleServiceServer регистрирует реализацию на gRPC-сервере.
func RegisterScaleServiceServer(s grpc.ServiceRegistrar, srv ScaleServiceServer) {
	s.RegisterService(&ScaleService_ServiceDesc, srv)
}

// ScaleServiceClient — клиентская сторона ScaleService.
type ScaleServiceClient interface {
	Compute(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	History(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type scaleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewScaleServiceClient создаёт клиента поверх соединения.
func NewScaleServiceClient(cc grpc.ClientConnInterface) ScaleServiceClient {
	return &scaleServiceClient{cc: cc}
}

func (c *scaleServiceClient) Compute(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ComputeFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scaleServiceClient) History(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, HistoryFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _ScaleService_Compute_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScaleServiceServer).Compute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ComputeFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScaleServiceServer).Compute(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScaleService_History_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScaleServiceServer).History(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: HistoryFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScaleServiceServer).History(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ScaleService_ServiceDesc — описание сервиса без генерации из .proto: сообщения берутся из well-known types.
var ScaleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ScaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Compute", Handler: _ScaleService_Compute_Handler},
		{MethodName: "History", Handler: _ScaleService_History_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "phicalc/v1/scale.proto",
}
