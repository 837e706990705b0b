package announcement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	announcementRepo "campushub/database/repository/announcement"
	"campushub/models"
	"campushub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeAnnouncementPublish is the asynq task that flips a scheduled
// announcement to published when its time arrives.
const TypeAnnouncementPublish = "announcement:publish"

var ErrNotFound = errors.New("announcement not found")

// publishPayload is the asynq task body.
type publishPayload struct {
	AnnouncementID string `json:"announcementId"`
}

// AnnouncementService manages campus announcements. Writes are restricted
// to admins and teachers at the route layer; ownership is not re-checked
// here beyond recording the author.
type AnnouncementService interface {
	Create(ctx context.Context, createdBy string, input models.AnnouncementInput) (*models.Announcement, error)
	Update(ctx context.Context, id string, input models.AnnouncementInput) (*models.Announcement, error)
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context) ([]models.Announcement, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	Publish(ctx context.Context, id string) error
}

// DefaultAnnouncementService is the production AnnouncementService.
// Queue may be nil in tests; scheduling is then skipped.
type DefaultAnnouncementService struct {
	Repo  announcementRepo.AnnouncementRepository
	Queue *asynq.Client
	Clock func() time.Time
}

func (s *DefaultAnnouncementService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

func (s *DefaultAnnouncementService) Create(ctx context.Context, createdBy string, input models.AnnouncementInput) (*models.Announcement, error) {
	announcement := models.Announcement{
		Title:     input.Title,
		Content:   input.Content,
		EventDate: input.EventDate,
		EventTime: input.EventTime,
		Location:  input.Location,
		Date:      s.now(),
		CreatedBy: createdBy,
		PublishAt: input.PublishAt,
		// Immediate announcements go live on creation; scheduled ones wait
		// for the worker.
		Published: input.PublishAt == nil || !input.PublishAt.After(s.now()),
	}

	id, err := s.Repo.Insert(ctx, announcement)
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}
	announcement.ID = id

	if !announcement.Published {
		if err := s.enqueuePublish(announcement); err != nil {
			// The announcement exists; a lost schedule is recoverable by
			// editing it, so log instead of failing the create.
			utils.GetLogger().Error("Failed to schedule announcement publish",
				zap.String("id", id), zap.Error(err))
		}
	}
	return &announcement, nil
}

func (s *DefaultAnnouncementService) enqueuePublish(announcement models.Announcement) error {
	if s.Queue == nil {
		return nil
	}
	payload, err := json.Marshal(publishPayload{AnnouncementID: announcement.ID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAnnouncementPublish, payload)
	_, err = s.Queue.Enqueue(task, asynq.ProcessAt(*announcement.PublishAt))
	return err
}

func (s *DefaultAnnouncementService) Update(ctx context.Context, id string, input models.AnnouncementInput) (*models.Announcement, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, announcementRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Content = input.Content
	existing.EventDate = input.EventDate
	existing.EventTime = input.EventTime
	existing.Location = input.Location

	if err := s.Repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update announcement: %w", err)
	}
	return existing, nil
}

func (s *DefaultAnnouncementService) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, announcementRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *DefaultAnnouncementService) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	return s.Repo.ListPublished(ctx)
}

func (s *DefaultAnnouncementService) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return s.Repo.ListAll(ctx)
}

// Publish marks a scheduled announcement as visible. Called by the worker.
func (s *DefaultAnnouncementService) Publish(ctx context.Context, id string) error {
	err := s.Repo.MarkPublished(ctx, id)
	if errors.Is(err, announcementRepo.ErrNotFound) {
		// Deleted before its publish time fired; nothing to do.
		return nil
	}
	return err
}

// DecodePublishTask extracts the announcement ID from an asynq task payload.
func DecodePublishTask(payload []byte) (string, error) {
	var p publishPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", err
	}
	return p.AnnouncementID, nil
}
