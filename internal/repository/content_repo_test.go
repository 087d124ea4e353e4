package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorhub/internal/database"
	"creatorhub/internal/domain"
)

func newContentRepo(t *testing.T) *ContentRepository {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)

	repo := NewContentRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func newItem(kind domain.ContentKind, id string) *domain.ContentItem {
	return &domain.ContentItem{
		ID:          id,
		OwnerID:     7,
		Kind:        kind,
		Title:       "Test item",
		Status:      domain.ContentDraft,
		PublishedTo: domain.DestinationSet{},
	}
}

func TestContentRepository_CreateAndGet(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	item := newItem(domain.KindMedia, "m-1")
	item.Description = "A short clip"
	item.PriceCents = 1500
	item.Currency = "USD"
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, domain.KindMedia, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, int64(7), got.OwnerID)
	assert.Equal(t, domain.KindMedia, got.Kind)
	assert.Equal(t, "A short clip", got.Description)
	assert.Equal(t, int64(1500), got.PriceCents)
	assert.Equal(t, domain.ContentDraft, got.Status)
	assert.True(t, got.PublishedTo.IsEmpty())
}

func TestContentRepository_TablesAreIndependent(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem(domain.KindMedia, "x-1")))

	// Same ID, different kind: separate tables, separate records.
	_, err := repo.GetByID(ctx, domain.KindPortfolio, "x-1")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)

	require.NoError(t, repo.Create(ctx, newItem(domain.KindPortfolio, "x-1")))
	got, err := repo.GetByID(ctx, domain.KindPortfolio, "x-1")
	require.NoError(t, err)
	assert.Equal(t, domain.KindPortfolio, got.Kind)
}

func TestContentRepository_GetByID_NotFound(t *testing.T) {
	repo := newContentRepo(t)

	_, err := repo.GetByID(context.Background(), domain.KindMasterclass, "missing")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestContentRepository_UpdateFields_BumpsRevision(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	item := newItem(domain.KindMedia, "m-1")
	require.NoError(t, repo.Create(ctx, item))

	err := repo.UpdateFields(ctx, domain.KindMedia, "m-1", 0, map[string]any{
		"status":                  domain.ContentPublished,
		"published_to":            domain.DestinationSet{domain.DestinationMedia},
		"publication_destination": domain.DestinationMedia,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, domain.KindMedia, "m-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Revision)
	assert.Equal(t, domain.ContentPublished, got.Status)
	assert.True(t, got.PublishedTo.Contains(domain.DestinationMedia))
	assert.Equal(t, domain.DestinationMedia, got.PublicationDestination)
}

func TestContentRepository_UpdateFields_StaleRevision(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem(domain.KindMedia, "m-1")))
	require.NoError(t, repo.UpdateFields(ctx, domain.KindMedia, "m-1", 0, map[string]any{"saved": true}))

	// A second writer still holding revision 0 must lose.
	err := repo.UpdateFields(ctx, domain.KindMedia, "m-1", 0, map[string]any{"saved": false})
	assert.ErrorIs(t, err, domain.ErrStaleRevision)

	got, err := repo.GetByID(ctx, domain.KindMedia, "m-1")
	require.NoError(t, err)
	assert.True(t, got.Saved)
}

func TestContentRepository_UpdateFields_MissingRecord(t *testing.T) {
	repo := newContentRepo(t)

	err := repo.UpdateFields(context.Background(), domain.KindMedia, "missing", 0, map[string]any{"saved": true})
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestContentRepository_UpdateFields_ClearsTimestamps(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	deadline := now.Add(domain.DeletionGracePeriod)
	item := newItem(domain.KindPortfolio, "p-1")
	item.Status = domain.ContentPendingDeletion
	item.DeletedAt = &now
	item.AutoDeleteAt = &deadline
	item.IsDeletedPending = true
	require.NoError(t, repo.Create(ctx, item))

	err := repo.UpdateFields(ctx, domain.KindPortfolio, "p-1", 0, map[string]any{
		"status":             domain.ContentDraft,
		"deleted_at":         nil,
		"auto_delete_at":     nil,
		"is_deleted_pending": false,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, domain.KindPortfolio, "p-1")
	require.NoError(t, err)
	assert.Nil(t, got.DeletedAt)
	assert.Nil(t, got.AutoDeleteAt)
	assert.False(t, got.IsDeletedPending)
}

func TestContentRepository_ListByOwner_HidesTerminalRows(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem(domain.KindMedia, "m-1")))
	gone := newItem(domain.KindMedia, "m-2")
	gone.Status = domain.ContentPermanentlyDeleted
	require.NoError(t, repo.Create(ctx, gone))
	other := newItem(domain.KindMedia, "m-3")
	other.OwnerID = 99
	require.NoError(t, repo.Create(ctx, other))

	items, err := repo.ListByOwner(ctx, domain.KindMedia, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m-1", items[0].ID)
}

func TestContentRepository_ListPublishedTo_SpansAllKinds(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	published := func(kind domain.ContentKind, id string, dests ...domain.Destination) *domain.ContentItem {
		item := newItem(kind, id)
		item.Status = domain.ContentPublished
		item.PublishedTo = domain.DestinationSet(dests)
		return item
	}
	require.NoError(t, repo.Create(ctx, published(domain.KindMedia, "m-1", domain.DestinationMedia, domain.DestinationPortfolio)))
	require.NoError(t, repo.Create(ctx, published(domain.KindPortfolio, "p-1", domain.DestinationPortfolio)))
	require.NoError(t, repo.Create(ctx, published(domain.KindMasterclass, "mc-1", domain.DestinationMasterclass)))

	// Pending-deletion rows never surface on public galleries.
	hidden := newItem(domain.KindMedia, "m-2")
	hidden.Status = domain.ContentPendingDeletion
	hidden.PublishedTo = domain.DestinationSet{domain.DestinationPortfolio}
	require.NoError(t, repo.Create(ctx, hidden))

	items, err := repo.ListPublishedTo(ctx, domain.DestinationPortfolio)
	require.NoError(t, err)
	require.Len(t, items, 2)

	ids := []string{items[0].ID, items[1].ID}
	assert.Contains(t, ids, "m-1")
	assert.Contains(t, ids, "p-1")
}

func TestContentRepository_ListSweepDue(t *testing.T) {
	repo := newContentRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	expired := now.Add(-1 * time.Hour)
	future := now.Add(48 * time.Hour)

	pending := func(kind domain.ContentKind, id string, deadline time.Time, saved bool) *domain.ContentItem {
		item := newItem(kind, id)
		item.Status = domain.ContentPendingDeletion
		item.AutoDeleteAt = &deadline
		item.Saved = saved
		return item
	}
	require.NoError(t, repo.Create(ctx, pending(domain.KindMedia, "due-1", expired, false)))
	require.NoError(t, repo.Create(ctx, pending(domain.KindMasterclass, "due-2", expired, false)))
	require.NoError(t, repo.Create(ctx, pending(domain.KindMedia, "saved", expired, true)))
	require.NoError(t, repo.Create(ctx, pending(domain.KindMedia, "not-yet", future, false)))

	due, err := repo.ListSweepDue(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)

	ids := []string{due[0].ID, due[1].ID}
	assert.Contains(t, ids, "due-1")
	assert.Contains(t, ids, "due-2")
}
