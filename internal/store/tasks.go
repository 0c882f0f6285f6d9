package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rmoura/agenda-api/internal/models"
)

// TaskStore handles task documents in the "tarefas" collection.
type TaskStore struct {
	col *mongo.Collection
}

func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{col: db.Collection("tarefas")}
}

// Insert persists a new task and returns the store-assigned id.
func (s *TaskStore) Insert(ctx context.Context, t *models.Task) (string, error) {
	res, err := s.col.InsertOne(ctx, t)
	if err != nil {
		return "", fmt.Errorf("mongo insert task: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// ListByOwner returns the owner's tasks in schedule order. An empty result is
// a nil slice, not an error.
func (s *TaskStore) ListByOwner(ctx context.Context, userID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "horario", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []models.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("mongo decode tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns the task with the given hex id, or ErrNotFound. A
// malformed id cannot match any document, so it is also ErrNotFound.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var t models.Task
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find task: %w", err)
	}
	return &t, nil
}

// Update merges the provided patch fields into the stored task. Unset patch
// fields are left untouched; userId and _id are never written.
func (s *TaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{}
	if patch.Titulo != "" {
		set["titulo"] = patch.Titulo
	}
	if patch.Descricao != "" {
		set["descricao"] = patch.Descricao
	}
	if patch.Horario != nil {
		set["horario"] = *patch.Horario
	}
	if _, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("mongo update task: %w", err)
	}
	return nil
}

// Delete removes the task with the given hex id.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("mongo delete task: %w", err)
	}
	return nil
}
