package enrollment

import (
	"context"
	"errors"
	"fmt"

	"creatorhub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Service orchestrates enrollment and its payment: try the primary
// gateway, then the fallback, record one payment row per attempt, create
// the enrollment on success. Sequential API plumbing, nothing more.
type Service struct {
	contents    ContentReader
	enrollments EnrollmentRepository
	payments    PaymentRepository
	gateways    []Gateway
	loggerf     func(format string, args ...interface{})
}

func NewService(contents ContentReader, enrollments EnrollmentRepository, payments PaymentRepository, gateways []Gateway, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		contents:    contents,
		enrollments: enrollments,
		payments:    payments,
		gateways:    gateways,
		loggerf:     loggerf,
	}
}

func (s *Service) Enroll(ctx context.Context, userID int64, masterclassID string) (*domain.Enrollment, error) {
	mc, err := s.contents.GetByID(ctx, domain.KindMasterclass, masterclassID)
	if errors.Is(err, domain.ErrContentNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load masterclass: %w", err)
	}
	if mc.Terminal() {
		return nil, ErrNotFound
	}
	if mc.Status != domain.ContentPublished || !mc.PublishedTo.Contains(domain.DestinationMasterclass) {
		return nil, ErrNotPublished
	}
	if mc.OwnerID == userID {
		return nil, ErrOwnMasterclass
	}

	currency := mc.Currency
	if currency == "" {
		currency = "USD"
	}

	var paymentID *int64
	if mc.PriceCents > 0 {
		payment, err := s.charge(ctx, userID, mc, currency)
		if err != nil {
			return nil, err
		}
		paymentID = &payment.ID
	}

	e := &domain.Enrollment{
		UserID:        userID,
		MasterclassID: masterclassID,
		Status:        domain.EnrollmentActive,
		AmountCents:   mc.PriceCents,
		Currency:      currency,
		PaymentID:     paymentID,
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("save enrollment: %w", err)
	}
	return e, nil
}

// charge walks the gateway table in order and returns the first successful
// payment. Every attempt leaves a row.
func (s *Service) charge(ctx context.Context, userID int64, mc *domain.ContentItem, currency string) (*domain.GatewayPayment, error) {
	req := ChargeRequest{
		UserID:        userID,
		MasterclassID: mc.ID,
		AmountCents:   mc.PriceCents,
		Currency:      currency,
		Description:   mc.Title,
	}

	for _, gw := range s.gateways {
		ref, err := gw.Charge(ctx, req)

		p := &domain.GatewayPayment{
			UserID:        userID,
			MasterclassID: mc.ID,
			Gateway:       gw.Name(),
			ExternalRef:   ref,
			AmountCents:   req.AmountCents,
			Currency:      currency,
		}
		if err != nil {
			p.Status = domain.GatewayPaymentFailed
			p.FailureReason = err.Error()
			if perr := s.payments.Create(ctx, p); perr != nil {
				s.loggerf("level=error msg=failed to record payment attempt gateway=%s err=%v", gw.Name(), perr)
			}
			s.loggerf("level=warn msg=gateway charge failed gateway=%s masterclass_id=%s err=%v", gw.Name(), mc.ID, err)
			continue
		}

		p.Status = domain.GatewayPaymentSucceeded
		if perr := s.payments.Create(ctx, p); perr != nil {
			return nil, fmt.Errorf("record successful payment: %w", perr)
		}
		return p, nil
	}
	return nil, ErrPaymentFailed
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
