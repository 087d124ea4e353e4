package enrollment

import (
	"context"

	"creatorhub/internal/domain"
)

type ContentReader interface {
	GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, e *domain.Enrollment) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.GatewayPayment) error
}

// ChargeRequest is what a gateway needs to take the money.
type ChargeRequest struct {
	UserID        int64
	MasterclassID string
	AmountCents   int64
	Currency      string
	Description   string
}

// Gateway is one external payment provider. Ordering of gateways is the
// static primary/fallback table; there is no provider state machine here.
type Gateway interface {
	Name() string
	Charge(ctx context.Context, req ChargeRequest) (externalRef string, err error)
}
