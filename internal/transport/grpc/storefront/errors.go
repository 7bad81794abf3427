package storefront

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// mapError translates domain errors into gRPC status errors.
// Unknown errors become codes.Internal.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return validationStatus(verr)
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrCartHasUnavailableItems):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrCartChanged):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, domain.ErrAmountOverflow):
		return status.Error(codes.OutOfRange, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}

// validationStatus carries every field message as a BadRequest violation.
func validationStatus(verr *domain.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())
	br := &errdetails.BadRequest{}
	for _, f := range verr.Fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}
	if withDetails, err := st.WithDetails(br); err == nil {
		st = withDetails
	}
	return st.Err()
}

// fail maps err and logs the failures the caller cannot act on.
func (h *Handler) fail(method string, err error) error {
	mapped := mapError(err)
	if status.Code(mapped) == codes.Internal {
		h.logger.Error("request failed",
			zap.String("method", method),
			zap.Error(err))
	}
	return mapped
}
