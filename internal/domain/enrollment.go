package domain

import "time"

type EnrollmentStatus string

const (
	EnrollmentPending EnrollmentStatus = "pending"
	EnrollmentActive  EnrollmentStatus = "active"
	EnrollmentRefused EnrollmentStatus = "refused"
)

// Enrollment links a user to a masterclass they paid for. One row per
// (user, masterclass), enforced by a unique index.
type Enrollment struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"user_id"`
	MasterclassID string           `json:"masterclass_id"`
	Status        EnrollmentStatus `json:"status"`
	AmountCents   int64            `json:"amount_cents"`
	Currency      string           `json:"currency"`
	PaymentID     *int64           `json:"payment_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated   GatewayPaymentStatus = "created"
	GatewayPaymentSucceeded GatewayPaymentStatus = "succeeded"
	GatewayPaymentFailed    GatewayPaymentStatus = "failed"
)

// GatewayPayment records one charge attempt against one payment gateway.
// A single enrollment may produce several rows when the primary gateway
// fails and the fallback is tried.
type GatewayPayment struct {
	ID            int64                `json:"id"`
	UserID        int64                `json:"user_id"`
	MasterclassID string               `json:"masterclass_id"`
	Gateway       string               `json:"gateway"`
	ExternalRef   string               `json:"external_ref,omitempty"`
	AmountCents   int64                `json:"amount_cents"`
	Currency      string               `json:"currency"`
	Status        GatewayPaymentStatus `json:"status"`
	FailureReason string               `json:"failure_reason,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
