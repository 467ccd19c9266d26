package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Unique index names. They are matched against duplicate-key messages to tell
// which field collided.
const (
	indexRoleName           = "uniq_roles_name"
	indexUserIdentification = "uniq_users_identification"
	indexUserEmail          = "uniq_users_email"
)

// EnsureIndexes creates the unique indexes backing role name, user
// identification and user email uniqueness. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(collectionRoles).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName(indexRoleName).SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure role indexes: %w", err)
	}

	_, err = db.Collection(collectionUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "identification", Value: 1}},
			Options: options.Index().SetName(indexUserIdentification).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(indexUserEmail).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "roleId", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

// duplicatedIndex reports whether err is a duplicate-key error and, when the
// server message names one of our unique indexes, which one.
func duplicatedIndex(err error) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			for _, name := range []string{indexRoleName, indexUserIdentification, indexUserEmail} {
				if strings.Contains(e.Message, name) {
					return name, true
				}
			}
		}
	}
	return "", true
}
