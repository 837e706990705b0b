// File: database/repository/announcement/announcement_mongo.go
package announcementRepo

import (
	"context"
	"errors"
	"time"

	"campushub/database"
	"campushub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no announcement matches the query.
var ErrNotFound = errors.New("announcement not found")

// AnnouncementRepository persists campus announcements.
type AnnouncementRepository interface {
	Insert(ctx context.Context, announcement models.Announcement) (string, error)
	Update(ctx context.Context, announcement models.Announcement) error
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Announcement, error)
	ListPublished(ctx context.Context) ([]models.Announcement, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	MarkPublished(ctx context.Context, id string) error
}

type mongoAnnouncementRepo struct {
	coll *mongo.Collection
}

// NewMongoAnnouncementRepo constructs a new MongoDB AnnouncementRepository.
func NewMongoAnnouncementRepo() AnnouncementRepository {
	return &mongoAnnouncementRepo{coll: database.DB().Collection("announcements")}
}

func (r *mongoAnnouncementRepo) Insert(ctx context.Context, announcement models.Announcement) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if announcement.ID == "" {
		announcement.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, announcement); err != nil {
		return "", err
	}
	return announcement.ID, nil
}

func (r *mongoAnnouncementRepo) Update(ctx context.Context, announcement models.Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": announcement.ID}, announcement)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAnnouncementRepo) DeleteByID(ctx context.Context, id string) error {
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

func (r *mongoAnnouncementRepo) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var announcement models.Announcement
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&announcement)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *mongoAnnouncementRepo) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	return r.list(ctx, bson.M{"published": true})
}

func (r *mongoAnnouncementRepo) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoAnnouncementRepo) list(ctx context.Context, filter bson.M) ([]models.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var announcements []models.Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *mongoAnnouncementRepo) MarkPublished(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"published": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
