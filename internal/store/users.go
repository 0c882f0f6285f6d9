package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rmoura/agenda-api/internal/models"
)

// ErrNotFound is returned when a document lookup matches nothing. Callers
// distinguish it from store failures with errors.Is.
var ErrNotFound = errors.New("document not found")

// UserStore handles account documents in the "usuarios" collection.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("usuarios")}
}

// Insert persists a new account and returns the store-assigned id.
func (s *UserStore) Insert(ctx context.Context, u *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return "", fmt.Errorf("mongo insert user: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// FindByEmail returns the first account with an exact email match, or
// ErrNotFound. Email is not unique-constrained; first match wins.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	return &u, nil
}
