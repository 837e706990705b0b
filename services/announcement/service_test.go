package announcement

import (
	"context"
	"fmt"
	"testing"
	"time"

	announcementRepo "campushub/database/repository/announcement"
	"campushub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnnouncementRepo struct {
	byID   map[string]models.Announcement
	nextID int
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{byID: make(map[string]models.Announcement)}
}

func (f *fakeAnnouncementRepo) Insert(_ context.Context, a models.Announcement) (string, error) {
	f.nextID++
	a.ID = fmt.Sprintf("ann-%d", f.nextID)
	f.byID[a.ID] = a
	return a.ID, nil
}

func (f *fakeAnnouncementRepo) Update(_ context.Context, a models.Announcement) error {
	if _, ok := f.byID[a.ID]; !ok {
		return announcementRepo.ErrNotFound
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeAnnouncementRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return announcementRepo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAnnouncementRepo) GetByID(_ context.Context, id string) (*models.Announcement, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, announcementRepo.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAnnouncementRepo) ListPublished(_ context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	for _, a := range f.byID {
		if a.Published {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) ListAll(_ context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	for _, a := range f.byID {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAnnouncementRepo) MarkPublished(_ context.Context, id string) error {
	a, ok := f.byID[id]
	if !ok {
		return announcementRepo.ErrNotFound
	}
	a.Published = true
	f.byID[id] = a
	return nil
}

func newTestService(repo *fakeAnnouncementRepo, now time.Time) *DefaultAnnouncementService {
	return &DefaultAnnouncementService{
		Repo:  repo,
		Clock: func() time.Time { return now },
	}
}

func TestCreatePublishesImmediately(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	repo := newFakeAnnouncementRepo()
	svc := newTestService(repo, now)

	t.Run("No Publish Time", func(t *testing.T) {
		created, err := svc.Create(context.Background(), "admin-1", models.AnnouncementInput{
			Title:   "Exam schedule released",
			Content: "Check the notice board.",
		})
		require.NoError(t, err)
		assert.True(t, created.Published)
		assert.Equal(t, "admin-1", created.CreatedBy)
		assert.Equal(t, now, created.Date)
	})

	t.Run("Publish Time In The Past", func(t *testing.T) {
		past := now.Add(-time.Hour)
		created, err := svc.Create(context.Background(), "admin-1", models.AnnouncementInput{
			Title:     "Backdated notice",
			Content:   "Already due.",
			PublishAt: &past,
		})
		require.NoError(t, err)
		assert.True(t, created.Published)
	})
}

func TestCreateScheduledStaysHidden(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	repo := newFakeAnnouncementRepo()
	svc := newTestService(repo, now)

	future := now.Add(48 * time.Hour)
	created, err := svc.Create(context.Background(), "teacher-1", models.AnnouncementInput{
		Title:     "Tech fest",
		Content:   "Registrations open Friday.",
		PublishAt: &future,
	})
	require.NoError(t, err)
	assert.False(t, created.Published)

	published, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, published)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPublishFlipsVisibility(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	repo := newFakeAnnouncementRepo()
	svc := newTestService(repo, now)

	future := now.Add(time.Hour)
	created, err := svc.Create(context.Background(), "teacher-1", models.AnnouncementInput{
		Title:     "Holiday notice",
		Content:   "Campus closed Monday.",
		PublishAt: &future,
	})
	require.NoError(t, err)
	require.False(t, created.Published)

	require.NoError(t, svc.Publish(context.Background(), created.ID))

	published, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Len(t, published, 1)
}

func TestPublishToleratesDeletedAnnouncement(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAnnouncementRepo(), now)

	// The worker may fire after the announcement was deleted.
	assert.NoError(t, svc.Publish(context.Background(), "gone"))
}

func TestUpdateKeepsScheduleAndAuthor(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	repo := newFakeAnnouncementRepo()
	svc := newTestService(repo, now)

	future := now.Add(time.Hour)
	created, err := svc.Create(context.Background(), "teacher-1", models.AnnouncementInput{
		Title:     "Draft title",
		Content:   "Draft body.",
		PublishAt: &future,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, models.AnnouncementInput{
		Title:   "Final title",
		Content: "Final body.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Final title", updated.Title)
	assert.Equal(t, "teacher-1", updated.CreatedBy)
	assert.False(t, updated.Published)
	require.NotNil(t, updated.PublishAt)
	assert.Equal(t, future, *updated.PublishAt)
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	now := time.Date(2026, time.August, 23, 10, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeAnnouncementRepo(), now)

	_, err := svc.Update(context.Background(), "missing", models.AnnouncementInput{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestDecodePublishTask(t *testing.T) {
	id, err := DecodePublishTask([]byte(`{"announcementId":"ann-42"}`))
	require.NoError(t, err)
	assert.Equal(t, "ann-42", id)

	_, err = DecodePublishTask([]byte("not json"))
	assert.Error(t, err)
}
