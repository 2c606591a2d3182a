package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// Mailer sends one transactional email. Callers treat delivery as
// fire-and-forget; a returned error never fails the surrounding request.
type Mailer interface {
	Send(ctx context.Context, email *entity.OutboundEmail) error
}
