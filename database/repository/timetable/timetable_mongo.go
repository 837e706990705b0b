package timetableRepo

import (
	"context"
	"errors"
	"time"

	"campushub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no timetable matches the query.
var ErrNotFound = errors.New("timetable not found")

func classFilter(branch, section, semester string) bson.M {
	filter := bson.M{"branch": branch, "section": section}
	if semester != "" {
		filter["semester"] = semester
	}
	return filter
}

func (r *mongoTimetableRepo) Upsert(ctx context.Context, timetable models.Timetable) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := classFilter(timetable.Branch, timetable.Section, timetable.Semester)

	var existing models.Timetable
	err := r.coll.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == nil:
		timetable.ID = existing.ID
		if _, err := r.coll.ReplaceOne(ctx, filter, timetable); err != nil {
			return "", err
		}
		return existing.ID, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		if timetable.ID == "" {
			timetable.ID = uuid.New().String()
		}
		if _, err := r.coll.InsertOne(ctx, timetable); err != nil {
			return "", err
		}
		return timetable.ID, nil
	default:
		return "", err
	}
}

func (r *mongoTimetableRepo) GetByClass(ctx context.Context, branch, section, semester string) (*models.Timetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var timetable models.Timetable
	err := r.coll.FindOne(ctx, classFilter(branch, section, semester)).Decode(&timetable)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

func (r *mongoTimetableRepo) GetByID(ctx context.Context, id string) (*models.Timetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var timetable models.Timetable
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&timetable)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &timetable, nil
}

func (r *mongoTimetableRepo) ListAll(ctx context.Context) ([]models.Timetable, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var timetables []models.Timetable
	if err := cursor.All(ctx, &timetables); err != nil {
		return nil, err
	}
	return timetables, nil
}

func (r *mongoTimetableRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
