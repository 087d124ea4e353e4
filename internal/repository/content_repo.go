package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/gorm"
)

// ContentRepository is the record store for content items. One logical
// entity, three physical tables selected by domain.ContentKind; every write
// is conditioned on the revision the caller read.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

type contentModel struct {
	ID                     string     `gorm:"column:id;primaryKey"`
	OwnerID                int64      `gorm:"column:owner_id;index"`
	Title                  string     `gorm:"column:title"`
	Description            *string    `gorm:"column:description"`
	MediaURL               *string    `gorm:"column:media_url"`
	ThumbnailURL           *string    `gorm:"column:thumbnail_url"`
	PriceCents             int64      `gorm:"column:price_cents"`
	Currency               *string    `gorm:"column:currency"`
	Status                 string     `gorm:"column:status;index"`
	PublishedTo            string     `gorm:"column:published_to"`
	PublicationDestination *string    `gorm:"column:publication_destination"`
	Saved                  bool       `gorm:"column:saved"`
	DeletedAt              *time.Time `gorm:"column:deleted_at"`
	AutoDeleteAt           *time.Time `gorm:"column:auto_delete_at;index"`
	IsDeletedPending       bool       `gorm:"column:is_deleted_pending"`
	Revision               int64      `gorm:"column:revision"`
	CreatedAt              time.Time  `gorm:"column:created_at"`
	UpdatedAt              time.Time  `gorm:"column:updated_at"`
}

func contentTable(kind domain.ContentKind) string {
	switch kind {
	case domain.KindMedia:
		return "media_items"
	case domain.KindPortfolio:
		return "portfolio_items"
	case domain.KindMasterclass:
		return "masterclasses"
	}
	return ""
}

func encodeDestinations(set domain.DestinationSet) string {
	if len(set) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(set)
	return string(b)
}

func decodeDestinations(raw string) (domain.DestinationSet, error) {
	if raw == "" {
		return domain.DestinationSet{}, nil
	}
	var set domain.DestinationSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, fmt.Errorf("decode published_to: %w", err)
	}
	return set, nil
}

func toDomainContent(kind domain.ContentKind, m contentModel) (*domain.ContentItem, error) {
	set, err := decodeDestinations(m.PublishedTo)
	if err != nil {
		return nil, err
	}

	var description, mediaURL, thumbURL string
	if m.Description != nil {
		description = *m.Description
	}
	if m.MediaURL != nil {
		mediaURL = *m.MediaURL
	}
	if m.ThumbnailURL != nil {
		thumbURL = *m.ThumbnailURL
	}
	var pubDest domain.Destination
	if m.PublicationDestination != nil {
		pubDest = domain.Destination(*m.PublicationDestination)
	}
	var currency string
	if m.Currency != nil {
		currency = *m.Currency
	}

	return &domain.ContentItem{
		ID:                     m.ID,
		OwnerID:                m.OwnerID,
		Kind:                   kind,
		Title:                  m.Title,
		Description:            description,
		MediaURL:               mediaURL,
		ThumbnailURL:           thumbURL,
		PriceCents:             m.PriceCents,
		Currency:               currency,
		Status:                 domain.ContentStatus(m.Status),
		PublishedTo:            set,
		PublicationDestination: pubDest,
		Saved:                  m.Saved,
		DeletedAt:              m.DeletedAt,
		AutoDeleteAt:           m.AutoDeleteAt,
		IsDeletedPending:       m.IsDeletedPending,
		Revision:               m.Revision,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}, nil
}

func toContentModel(c *domain.ContentItem) contentModel {
	var description, mediaURL, thumbURL, pubDest, currency *string
	if c.Currency != "" {
		v := c.Currency
		currency = &v
	}
	if c.Description != "" {
		v := c.Description
		description = &v
	}
	if c.MediaURL != "" {
		v := c.MediaURL
		mediaURL = &v
	}
	if c.ThumbnailURL != "" {
		v := c.ThumbnailURL
		thumbURL = &v
	}
	if c.PublicationDestination != "" {
		v := string(c.PublicationDestination)
		pubDest = &v
	}

	return contentModel{
		ID:                     c.ID,
		OwnerID:                c.OwnerID,
		Title:                  c.Title,
		Description:            description,
		MediaURL:               mediaURL,
		ThumbnailURL:           thumbURL,
		PriceCents:             c.PriceCents,
		Currency:               currency,
		Status:                 string(c.Status),
		PublishedTo:            encodeDestinations(c.PublishedTo),
		PublicationDestination: pubDest,
		Saved:                  c.Saved,
		DeletedAt:              c.DeletedAt,
		AutoDeleteAt:           c.AutoDeleteAt,
		IsDeletedPending:       c.IsDeletedPending,
		Revision:               c.Revision,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

// AutoMigrate creates the three content tables. Used by seed and tests;
// production schema is managed by migrations.
func (r *ContentRepository) AutoMigrate() error {
	for _, kind := range []domain.ContentKind{domain.KindMedia, domain.KindPortfolio, domain.KindMasterclass} {
		if err := r.db.Table(contentTable(kind)).AutoMigrate(&contentModel{}); err != nil {
			return err
		}
	}
	return nil
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.ContentItem) error {
	m := toContentModel(c)
	tx := r.db.WithContext(ctx).Table(contentTable(c.Kind)).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, kind domain.ContentKind, id string) (*domain.ContentItem, error) {
	var m contentModel
	tx := r.db.WithContext(ctx).Table(contentTable(kind)).Where("id = ?", id).Take(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrContentNotFound
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainContent(kind, m)
}

// UpdateFields applies a partial update as a single conditional write:
// the row is touched only if its revision still equals the revision the
// caller read. Zero rows affected means either the record vanished or a
// concurrent writer got there first.
func (r *ContentRepository) UpdateFields(ctx context.Context, kind domain.ContentKind, id string, revision int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		switch t := v.(type) {
		case domain.DestinationSet:
			updates[k] = encodeDestinations(t)
		case domain.ContentStatus:
			updates[k] = string(t)
		case domain.Destination:
			updates[k] = string(t)
		default:
			updates[k] = v
		}
	}
	updates["revision"] = revision + 1
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Table(contentTable(kind)).
		Where("id = ? AND revision = ?", id, revision).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Table(contentTable(kind)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrContentNotFound
		}
		return domain.ErrStaleRevision
	}
	return nil
}

// ListByOwner returns the owner's items of one kind, newest first.
// Permanently deleted rows never appear in listings.
func (r *ContentRepository) ListByOwner(ctx context.Context, kind domain.ContentKind, ownerID int64) ([]*domain.ContentItem, error) {
	var rows []contentModel
	tx := r.db.WithContext(ctx).
		Table(contentTable(kind)).
		Where("owner_id = ? AND status <> ?", ownerID, string(domain.ContentPermanentlyDeleted)).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.toDomainList(kind, rows)
}

// ListPublishedTo returns every item, across all three tables, currently
// published to the given destination surface.
func (r *ContentRepository) ListPublishedTo(ctx context.Context, dest domain.Destination) ([]*domain.ContentItem, error) {
	// published_to is a JSON array of strings; containment is matched on the
	// quoted tag, which is unambiguous for the three known values.
	pattern := `%"` + string(dest) + `"%`

	var out []*domain.ContentItem
	for _, kind := range []domain.ContentKind{domain.KindMedia, domain.KindPortfolio, domain.KindMasterclass} {
		var rows []contentModel
		tx := r.db.WithContext(ctx).
			Table(contentTable(kind)).
			Where("status = ? AND published_to LIKE ?", string(domain.ContentPublished), pattern).
			Order("created_at DESC").
			Find(&rows)
		if tx.Error != nil {
			return nil, tx.Error
		}
		items, err := r.toDomainList(kind, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// ListSweepDue returns items whose deletion grace period has expired:
// pending deletion, not saved, auto_delete_at at or before now.
func (r *ContentRepository) ListSweepDue(ctx context.Context, now time.Time) ([]*domain.ContentItem, error) {
	var out []*domain.ContentItem
	for _, kind := range []domain.ContentKind{domain.KindMedia, domain.KindPortfolio, domain.KindMasterclass} {
		var rows []contentModel
		tx := r.db.WithContext(ctx).
			Table(contentTable(kind)).
			Where("status = ? AND saved = ? AND auto_delete_at IS NOT NULL AND auto_delete_at <= ?",
				string(domain.ContentPendingDeletion), false, now).
			Find(&rows)
		if tx.Error != nil {
			return nil, tx.Error
		}
		items, err := r.toDomainList(kind, rows)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *ContentRepository) toDomainList(kind domain.ContentKind, rows []contentModel) ([]*domain.ContentItem, error) {
	out := make([]*domain.ContentItem, 0, len(rows))
	for _, m := range rows {
		item, err := toDomainContent(kind, m)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
