package repository

import (
	"context"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/gorm"
)

type GatewayPaymentRepository struct {
	db *gorm.DB
}

func NewGatewayPaymentRepository(db *gorm.DB) *GatewayPaymentRepository {
	return &GatewayPaymentRepository{db: db}
}

type gatewayPaymentModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;index"`
	MasterclassID string    `gorm:"column:masterclass_id;index"`
	Gateway       string    `gorm:"column:gateway"`
	ExternalRef   *string   `gorm:"column:external_ref"`
	AmountCents   int64     `gorm:"column:amount_cents"`
	Currency      string    `gorm:"column:currency"`
	Status        string    `gorm:"column:status"`
	FailureReason *string   `gorm:"column:failure_reason"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (gatewayPaymentModel) TableName() string { return "gateway_payments" }

func (r *GatewayPaymentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&gatewayPaymentModel{})
}

func (r *GatewayPaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	var extRef, failure *string
	if p.ExternalRef != "" {
		v := p.ExternalRef
		extRef = &v
	}
	if p.FailureReason != "" {
		v := p.FailureReason
		failure = &v
	}
	m := gatewayPaymentModel{
		UserID:        p.UserID,
		MasterclassID: p.MasterclassID,
		Gateway:       p.Gateway,
		ExternalRef:   extRef,
		AmountCents:   p.AmountCents,
		Currency:      p.Currency,
		Status:        string(p.Status),
		FailureReason: failure,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}
