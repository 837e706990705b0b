// File: database/repository/timetable/interface.go
package timetableRepo

import (
	"context"

	"campushub/database"
	"campushub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimetableRepository persists class timetables. Upsert replaces the whole
// document for a branch+section+semester; there is no per-slot mutation.
type TimetableRepository interface {
	Upsert(ctx context.Context, timetable models.Timetable) (string, error)
	GetByClass(ctx context.Context, branch, section, semester string) (*models.Timetable, error)
	GetByID(ctx context.Context, id string) (*models.Timetable, error)
	ListAll(ctx context.Context) ([]models.Timetable, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoTimetableRepo struct {
	coll *mongo.Collection
}

// NewMongoTimetableRepo constructs a new MongoDB TimetableRepository.
func NewMongoTimetableRepo() TimetableRepository {
	return &mongoTimetableRepo{
		coll: database.DB().Collection("student_timetables"),
	}
}
