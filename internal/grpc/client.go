package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"webcalc/internal/calculator"
)

const dialTimeout = 5 * time.Second

// CalculatorClient - gRPC клиент калькулятора
type CalculatorClient struct {
	conn *grpc.ClientConn
}

// NewCalculatorClient подключается к серверу и ждет готовности соединения
func NewCalculatorClient(serverAddr string, opts ...grpc.DialOption) (*CalculatorClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.CallContentSubtype(codecName),
			grpc.MaxCallRecvMsgSize(1024*1024),
			grpc.MaxCallSendMsgSize(1024*1024),
		),
		grpc.WithBlock(),
	}, opts...)

	conn, err := grpc.DialContext(ctx, serverAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverAddr, err)
	}

	return &CalculatorClient{conn: conn}, nil
}

// Close закрывает соединение с сервером
func (c *CalculatorClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Calculate отправляет операцию и текстовые операнды на сервер.
// Ошибки ввода и деления на ноль возвращаются как ошибки пакета calculator.
func (c *CalculatorClient) Calculate(ctx context.Context, op calculator.Operation, a, b string) (*CalculateResponse, error) {
	req := &CalculateRequest{
		Operation: string(op),
		A:         a,
		B:         b,
	}

	resp := new(CalculateResponse)
	if err := c.conn.Invoke(ctx, calculateMethod, req, resp); err != nil {
		return nil, fromStatus(err)
	}

	return resp, nil
}
