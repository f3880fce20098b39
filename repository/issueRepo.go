package repository

import (
	"context"
	"time"

	"ainamoi-portal-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrIssueNotFound is returned when an update targets an unknown report
var ErrIssueNotFound = mongo.ErrNoDocuments

// IssueRepo persists issue reports in MongoDB
type IssueRepo struct {
	collection *mongo.Collection
}

func NewIssueRepo(collection *mongo.Collection) *IssueRepo {
	return &IssueRepo{collection: collection}
}

// Insert persists a new report and fills its ID
func (r *IssueRepo) Insert(ctx context.Context, issue *models.Issue) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	issue.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, issue)
	return err
}

// ListNewestFirst returns every report ordered by creation time, newest first
func (r *IssueRepo) ListNewestFirst(ctx context.Context) ([]models.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// SetStatus overwrites the status of one report. Last write wins; there is
// no version stamp guarding concurrent staff edits.
func (r *IssueRepo) SetStatus(ctx context.Context, id string, status models.IssueStatus) error {
	return r.setField(ctx, id, "status", string(status))
}

// SetPriority overwrites the priority of one report
func (r *IssueRepo) SetPriority(ctx context.Context, id string, priority models.IssuePriority) error {
	return r.setField(ctx, id, "priority", string(priority))
}

func (r *IssueRepo) setField(ctx context.Context, id, field, value string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrIssueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{field: value, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrIssueNotFound
	}
	return nil
}
