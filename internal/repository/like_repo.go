package repository

import (
	"context"
	"errors"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

type likeModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_like_once"`
	ContentID string    `gorm:"column:content_id;uniqueIndex:idx_like_once;index"`
	Kind      string    `gorm:"column:kind;uniqueIndex:idx_like_once"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (likeModel) TableName() string { return "likes" }

func (r *LikeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&likeModel{})
}

func (r *LikeRepository) Add(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error {
	m := likeModel{UserID: userID, ContentID: contentID, Kind: string(kind)}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *LikeRepository) Remove(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND content_id = ?", userID, string(kind), contentID).
		Delete(&likeModel{}).Error
}

func (r *LikeRepository) Count(ctx context.Context, kind domain.ContentKind, contentID string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&likeModel{}).
		Where("kind = ? AND content_id = ?", string(kind), contentID).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *LikeRepository) Exists(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) (bool, error) {
	var m likeModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND content_id = ?", userID, string(kind), contentID).
		Take(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if tx.Error != nil {
		return false, tx.Error
	}
	return true, nil
}

// DeleteForContent removes every like of one content item. Called when the
// owner hard-deletes the item.
func (r *LikeRepository) DeleteForContent(ctx context.Context, kind domain.ContentKind, contentID string) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND content_id = ?", string(kind), contentID).
		Delete(&likeModel{}).Error
}
