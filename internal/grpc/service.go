package grpc

import (
	"context"
	"encoding/json"
	"math"

	"google.golang.org/grpc"
)

const (
	serviceName     = "webcalc.Calculator"
	calculateMethod = "/" + serviceName + "/Calculate"
)

// CalculateRequest - операнды передаются текстом, как из полей ввода
type CalculateRequest struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
}

// CalculateResponse - при переполнении result в JSON равен null,
// а Display содержит "Infinity" или "-Infinity".
type CalculateResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

type calculateResponseJSON struct {
	Result  *float64 `json:"result"`
	Display string   `json:"display"`
}

func (r *CalculateResponse) MarshalJSON() ([]byte, error) {
	out := calculateResponseJSON{Display: r.Display}
	if !math.IsInf(r.Result, 0) && !math.IsNaN(r.Result) {
		out.Result = &r.Result
	}
	return json.Marshal(out)
}

func (r *CalculateResponse) UnmarshalJSON(data []byte) error {
	var in calculateResponseJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	r.Display = in.Display
	switch {
	case in.Result != nil:
		r.Result = *in.Result
	case in.Display == "Infinity":
		r.Result = math.Inf(1)
	case in.Display == "-Infinity":
		r.Result = math.Inf(-1)
	default:
		r.Result = 0
	}
	return nil
}

// CalculatorService - контракт gRPC сервиса калькулятора
type CalculatorService interface {
	Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error)
}

var calculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CalculatorService)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    calculateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "webcalc/calculator",
}

// RegisterCalculatorServer регистрирует сервис на gRPC сервере
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorService) {
	s.RegisterService(&calculatorServiceDesc, srv)
}

func calculateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorService).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: calculateMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorService).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}
