package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// DispatchLogRepository records every outbound email attempt.
type DispatchLogRepository interface {
	Record(ctx context.Context, dispatch *entity.EmailDispatch) error
}
