package grpcsvc

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
)

// codeOf сопоставляет доменную ошибку gRPC-коду.
func codeOf(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case domain.IsNotFound(err):
		return codes.NotFound
	case domain.IsInvalidInput(err):
		return codes.InvalidArgument
	case domain.IsRuleViolation(err):
		return codes.FailedPrecondition
	case domain.IsVersionConflict(err):
		return codes.Aborted
	case domain.IsAlreadyExists(err):
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// toStatus превращает ошибку сервиса в gRPC-статус. Внутренние ошибки логируются,
// а клиенту уходит обезличенное сообщение.
func toStatus(logger *log.Entry, operation string, err error) error {
	code := codeOf(err)
	if code == codes.Internal {
		logger.WithError(err).WithField("operation", operation).Error("request failed")
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

func parseID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

// parseOptionalID возвращает nil для пустого значения.
func parseOptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
