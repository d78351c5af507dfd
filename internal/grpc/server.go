package grpc

import (
	"context"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"webcalc/internal/calculator"
)

// CalculatorServer реализует gRPC сервис калькулятора
type CalculatorServer struct{}

// NewCalculatorServer создает новый экземпляр gRPC сервиса
func NewCalculatorServer() *CalculatorServer {
	return &CalculatorServer{}
}

// Calculate проверяет операцию и операнды, затем считает
func (s *CalculatorServer) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	result, err := calculator.EvaluateNamed(req.Operation, req.A, req.B)
	if err != nil {
		return nil, toStatus(err)
	}

	return &CalculateResponse{
		Result:  result,
		Display: calculator.FormatResult(result),
	}, nil
}

// NewServer создает gRPC сервер с зарегистрированным калькулятором
func NewServer(extra ...grpc.ServerOption) *grpc.Server {
	// Настройки для keepalive и размеров сообщений
	opts := []grpc.ServerOption{
		grpc.ForceServerCodec(jsonCodec{}),
		grpc.ChainUnaryInterceptor(loggingInterceptor),
		grpc.MaxRecvMsgSize(1024 * 1024), // 1MB
		grpc.MaxSendMsgSize(1024 * 1024), // 1MB
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     time.Minute,
			MaxConnectionAge:      5 * time.Minute,
			MaxConnectionAgeGrace: 20 * time.Second,
			Time:                  20 * time.Second,
			Timeout:               10 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	s := grpc.NewServer(append(opts, extra...)...)
	RegisterCalculatorServer(s, NewCalculatorServer())
	return s
}

// StartServer слушает адрес и обслуживает запросы до остановки сервера
func StartServer(address string, s *grpc.Server) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	log.Printf("gRPC сервер запущен на %s", address)
	return s.Serve(lis)
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("gRPC %s: код=%s, время=%s", info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}
