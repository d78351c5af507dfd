package grpc

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/runtime/protoiface"

	"webcalc/internal/calculator"
)

const (
	errorDomain            = "webcalc"
	reasonDivisionByZero   = "DIVISION_BY_ZERO"
	reasonUnknownOperation = "UNKNOWN_OPERATION"
)

// toStatus переводит ошибку калькулятора в gRPC статус с деталями
func toStatus(err error) error {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return statusWithDetails(codes.InvalidArgument, err.Error(),
			&errdetails.ErrorInfo{Reason: reasonDivisionByZero, Domain: errorDomain})

	case calculator.IsInvalidInput(err):
		badRequest := &errdetails.BadRequest{}
		for _, e := range invalidFields(err) {
			badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       e.Field,
				Description: e.Message,
			})
		}

		details := []protoiface.MessageV1{badRequest}
		if errors.Is(err, calculator.ErrUnknownOperation) {
			details = append(details, &errdetails.ErrorInfo{Reason: reasonUnknownOperation, Domain: errorDomain})
		}
		return statusWithDetails(codes.InvalidArgument, err.Error(), details...)
	}

	return status.Error(codes.Internal, "internal error")
}

func invalidFields(err error) calculator.ValidationErrors {
	var verrs calculator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return verrs.Add(err)
}

func statusWithDetails(code codes.Code, msg string, details ...protoiface.MessageV1) error {
	st := status.New(code, msg)
	if withDetails, err := st.WithDetails(details...); err == nil {
		st = withDetails
	}
	return st.Err()
}

// fromStatus восстанавливает ошибку калькулятора из gRPC статуса,
// чтобы errors.Is(err, calculator.ErrDivisionByZero) работал и на клиенте.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return err
	}

	var (
		verrs   calculator.ValidationErrors
		unknown bool
	)
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			switch d.GetReason() {
			case reasonDivisionByZero:
				return calculator.ErrDivisionByZero
			case reasonUnknownOperation:
				unknown = true
			}
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				verrs = append(verrs, calculator.NewInvalidInput(v.GetField(), v.GetDescription()))
			}
		}
	}

	if unknown {
		for _, e := range verrs {
			if e.Field == "operation" {
				e.Err = calculator.ErrUnknownOperation
			}
		}
	}

	if len(verrs) == 0 {
		return err
	}
	return verrs.Err()
}
