package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Credentials is the slice of an admin document the login flow needs.
type Credentials struct {
	ID           bson.ObjectID `bson:"_id"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
}

// CredentialStore looks up login identities.
type CredentialStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*Credentials, error)
}

// GetAdminByEmail returns the admin with the given email, or ErrNotFound.
func (s *MongoStore) GetAdminByEmail(ctx context.Context, email string) (*Credentials, error) {
	var creds Credentials
	err := s.db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&creds)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &creds, nil
}
