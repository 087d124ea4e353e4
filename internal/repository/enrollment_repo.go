package repository

import (
	"context"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

type enrollmentModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        int64     `gorm:"column:user_id;uniqueIndex:idx_enroll_once"`
	MasterclassID string    `gorm:"column:masterclass_id;uniqueIndex:idx_enroll_once;index"`
	Status        string    `gorm:"column:status"`
	AmountCents   int64     `gorm:"column:amount_cents"`
	Currency      string    `gorm:"column:currency"`
	PaymentID     *int64    `gorm:"column:payment_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (enrollmentModel) TableName() string { return "enrollments" }

func toDomainEnrollment(m enrollmentModel) *domain.Enrollment {
	return &domain.Enrollment{
		ID:            m.ID,
		UserID:        m.UserID,
		MasterclassID: m.MasterclassID,
		Status:        domain.EnrollmentStatus(m.Status),
		AmountCents:   m.AmountCents,
		Currency:      m.Currency,
		PaymentID:     m.PaymentID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *EnrollmentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&enrollmentModel{})
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	m := enrollmentModel{
		UserID:        e.UserID,
		MasterclassID: e.MasterclassID,
		Status:        string(e.Status),
		AmountCents:   e.AmountCents,
		Currency:      e.Currency,
		PaymentID:     e.PaymentID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEnrollment(m)
	return nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	var rows []enrollmentModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]*domain.Enrollment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainEnrollment(m))
	}
	return out, nil
}
