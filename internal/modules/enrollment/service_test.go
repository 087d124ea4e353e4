package enrollment

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"creatorhub/internal/domain"
)

type MockContentReader struct {
	mock.Mock
}

func (m *MockContentReader) GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 501 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockEnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Enrollment), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 301 // simulate DB insert
	}
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
	name string
}

func (m *MockGateway) Name() string { return m.name }

func (m *MockGateway) Charge(ctx context.Context, req ChargeRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func openMasterclass() *domain.ContentItem {
	return &domain.ContentItem{
		ID:          "mc-1",
		OwnerID:     7,
		Kind:        domain.KindMasterclass,
		Title:       "Lighting fundamentals",
		PriceCents:  4900,
		Currency:    "USD",
		Status:      domain.ContentPublished,
		PublishedTo: domain.DestinationSet{domain.DestinationMasterclass},
	}
}

func TestService_Enroll_PrimaryGatewaySucceeds(t *testing.T) {
	contents := new(MockContentReader)
	enrollments := new(MockEnrollmentRepository)
	payments := new(MockPaymentRepository)
	primary := &MockGateway{name: "stripe"}

	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(openMasterclass(), nil)
	primary.On("Charge", mock.Anything, mock.Anything).Return("ch_123", nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.GatewayPayment) bool {
		return p.Gateway == "stripe" && p.Status == domain.GatewayPaymentSucceeded && p.ExternalRef == "ch_123"
	})).Return(nil)
	enrollments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, enrollments, payments, []Gateway{primary}, nil)
	e, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.EnrollmentActive, e.Status)
	assert.Equal(t, int64(4900), e.AmountCents)
	if assert.NotNil(t, e.PaymentID) {
		assert.Equal(t, int64(301), *e.PaymentID)
	}
	payments.AssertExpectations(t)
}

func TestService_Enroll_FallbackGatewayUsed(t *testing.T) {
	contents := new(MockContentReader)
	enrollments := new(MockEnrollmentRepository)
	payments := new(MockPaymentRepository)
	primary := &MockGateway{name: "stripe"}
	fallback := &MockGateway{name: "paypal"}

	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(openMasterclass(), nil)
	primary.On("Charge", mock.Anything, mock.Anything).Return("", errors.New("gateway timeout"))
	fallback.On("Charge", mock.Anything, mock.Anything).Return("pp_456", nil)

	// One payment row per attempt: a failed one and a successful one.
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.GatewayPayment) bool {
		return p.Gateway == "stripe" && p.Status == domain.GatewayPaymentFailed
	})).Return(nil).Once()
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.GatewayPayment) bool {
		return p.Gateway == "paypal" && p.Status == domain.GatewayPaymentSucceeded
	})).Return(nil).Once()
	enrollments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, enrollments, payments, []Gateway{primary, fallback}, nil)
	e, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.NoError(t, err)
	assert.NotNil(t, e)
	payments.AssertExpectations(t)
}

func TestService_Enroll_AllGatewaysFail(t *testing.T) {
	contents := new(MockContentReader)
	enrollments := new(MockEnrollmentRepository)
	payments := new(MockPaymentRepository)
	primary := &MockGateway{name: "stripe"}
	fallback := &MockGateway{name: "paypal"}

	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(openMasterclass(), nil)
	primary.On("Charge", mock.Anything, mock.Anything).Return("", errors.New("declined"))
	fallback.On("Charge", mock.Anything, mock.Anything).Return("", errors.New("declined"))
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, enrollments, payments, []Gateway{primary, fallback}, nil)
	_, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.ErrorIs(t, err, ErrPaymentFailed)
	enrollments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Enroll_FreeMasterclassSkipsPayment(t *testing.T) {
	contents := new(MockContentReader)
	enrollments := new(MockEnrollmentRepository)
	payments := new(MockPaymentRepository)

	free := openMasterclass()
	free.PriceCents = 0
	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(free, nil)
	enrollments.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(contents, enrollments, payments, nil, nil)
	e, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.NoError(t, err)
	assert.Nil(t, e.PaymentID)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Enroll_NotPublished(t *testing.T) {
	contents := new(MockContentReader)

	draft := openMasterclass()
	draft.Status = domain.ContentDraft
	draft.PublishedTo = domain.DestinationSet{}
	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(draft, nil)

	svc := NewService(contents, new(MockEnrollmentRepository), new(MockPaymentRepository), nil, nil)
	_, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.ErrorIs(t, err, ErrNotPublished)
}

func TestService_Enroll_OwnMasterclass(t *testing.T) {
	contents := new(MockContentReader)
	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(openMasterclass(), nil)

	svc := NewService(contents, new(MockEnrollmentRepository), new(MockPaymentRepository), nil, nil)
	_, err := svc.Enroll(context.Background(), 7, "mc-1")

	assert.ErrorIs(t, err, ErrOwnMasterclass)
}

func TestService_Enroll_DuplicateEnrollment(t *testing.T) {
	contents := new(MockContentReader)
	enrollments := new(MockEnrollmentRepository)
	payments := new(MockPaymentRepository)
	primary := &MockGateway{name: "stripe"}

	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(openMasterclass(), nil)
	primary.On("Charge", mock.Anything, mock.Anything).Return("ch_123", nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	enrollments.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

	svc := NewService(contents, enrollments, payments, []Gateway{primary}, nil)
	_, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestService_Enroll_TerminalMasterclassInvisible(t *testing.T) {
	contents := new(MockContentReader)

	gone := openMasterclass()
	gone.Status = domain.ContentPermanentlyDeleted
	contents.On("GetByID", mock.Anything, domain.KindMasterclass, "mc-1").Return(gone, nil)

	svc := NewService(contents, new(MockEnrollmentRepository), new(MockPaymentRepository), nil, nil)
	_, err := svc.Enroll(context.Background(), 42, "mc-1")

	assert.ErrorIs(t, err, ErrNotFound)
}
