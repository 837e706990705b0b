package timetable

import (
	"context"
	"errors"

	"campushub/models"
)

// Failure modes the handler layer maps to HTTP statuses.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("timetable not found")
	ErrProfileIncomplete = errors.New("Your profile is incomplete. Please contact admin to update your branch and section.")
)

// TimetableService is the server side of the timetable store: the admin
// write path and the student read path over the Mongo collection.
type TimetableService interface {
	CreateManual(ctx context.Context, createdBy string, submission models.TimetableSubmission) (*models.Timetable, error)
	ListAll(ctx context.Context) ([]models.Timetable, error)
	GetByClass(ctx context.Context, branch, section, semester string) (*models.Timetable, error)
	GetForStudent(ctx context.Context, student *models.User) (*models.Timetable, error)
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, id string) ([]byte, error)
}
