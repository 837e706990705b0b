package timetable

import (
	"context"
	"errors"
	"fmt"
	"time"

	timetableRepo "campushub/database/repository/timetable"
	"campushub/models"
	"campushub/utils"

	"go.uber.org/zap"
)

// DefaultTimetableService is the production TimetableService.
type DefaultTimetableService struct {
	Repo  timetableRepo.TimetableRepository
	Clock func() time.Time
}

func (s *DefaultTimetableService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// CreateManual validates a submission and upserts the timetable for its
// branch+section+semester. The same checks the editor runs client-side are
// enforced here so a slot without time or subject is never persisted,
// whatever client produced the payload.
func (s *DefaultTimetableService) CreateManual(ctx context.Context, createdBy string, submission models.TimetableSubmission) (*models.Timetable, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	timetable := models.Timetable{
		Branch:    submission.Branch,
		Section:   submission.Section,
		Semester:  submission.Semester,
		Days:      submission.Days.Normalize(),
		Status:    "active",
		Type:      "manual",
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	}

	id, err := s.Repo.Upsert(ctx, timetable)
	if err != nil {
		return nil, fmt.Errorf("upsert timetable: %w", err)
	}
	timetable.ID = id

	utils.GetLogger().Info("Timetable saved",
		zap.String("branch", timetable.Branch),
		zap.String("section", timetable.Section),
		zap.String("semester", timetable.Semester),
		zap.Int("classes", timetable.Days.TotalSlotCount()))
	return &timetable, nil
}

func validateSubmission(submission models.TimetableSubmission) error {
	if submission.Branch == "" || submission.Section == "" || submission.Semester == "" {
		return fmt.Errorf("%w: branch, section, and semester are required", ErrInvalidInput)
	}
	if submission.Days.TotalSlotCount() == 0 {
		return fmt.Errorf("%w: schedule has no classes", ErrInvalidInput)
	}
	for _, day := range models.WeekDays {
		for _, slot := range submission.Days.SlotsFor(day) {
			if slot.Time == "" || slot.Subject == "" {
				return fmt.Errorf("%w: every class in %s needs a time and subject", ErrInvalidInput, day)
			}
		}
	}
	return nil
}

func (s *DefaultTimetableService) ListAll(ctx context.Context) ([]models.Timetable, error) {
	timetables, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}
	return timetables, nil
}

func (s *DefaultTimetableService) GetByClass(ctx context.Context, branch, section, semester string) (*models.Timetable, error) {
	timetable, err := s.Repo.GetByClass(ctx, branch, section, semester)
	if errors.Is(err, timetableRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return timetable, nil
}

// GetForStudent resolves the caller's timetable from their profile. The
// semester-qualified lookup falls back to branch+section alone, matching
// how timetables without a semester were stored historically.
func (s *DefaultTimetableService) GetForStudent(ctx context.Context, student *models.User) (*models.Timetable, error) {
	if student.Branch == "" || student.Section == "" {
		return nil, ErrProfileIncomplete
	}

	timetable, err := s.Repo.GetByClass(ctx, student.Branch, student.Section, student.Semester)
	if errors.Is(err, timetableRepo.ErrNotFound) && student.Semester != "" {
		timetable, err = s.Repo.GetByClass(ctx, student.Branch, student.Section, "")
	}
	if errors.Is(err, timetableRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return timetable, nil
}

func (s *DefaultTimetableService) Delete(ctx context.Context, id string) error {
	err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, timetableRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
