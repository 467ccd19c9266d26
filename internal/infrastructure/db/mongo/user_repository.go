package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/user-roles-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// userDocument stores roleId as an ObjectID reference into the roles collection.
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FirstNames     string             `bson:"firstNames"`
	LastNames      string             `bson:"lastNames"`
	Identification string             `bson:"identification"`
	Email          string             `bson:"email"`
	RoleID         primitive.ObjectID `bson:"roleId"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		FirstNames:     d.FirstNames,
		LastNames:      d.LastNames,
		Identification: d.Identification,
		Email:          d.Email,
		RoleID:         d.RoleID.Hex(),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// List returns all users in natural store order.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByIdentification(ctx context.Context, identification string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"identification": identification})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// Create inserts a new user document and fills in ID and timestamps.
// user.RoleID must be a valid hex ObjectID.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	roleID, err := primitive.ObjectIDFromHex(user.RoleID)
	if err != nil {
		return fmt.Errorf("insert user: role id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ts := now()
	doc := userDocument{
		ID:             primitive.NewObjectID(),
		FirstNames:     user.FirstNames,
		LastNames:      user.LastNames,
		Identification: user.Identification,
		Email:          user.Email,
		RoleID:         roleID,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if index, dup := duplicatedIndex(err); dup {
			if index == indexUserEmail {
				return domain.Duplicate("user", "email", user.Email)
			}
			return domain.Duplicate("user", "identification", user.Identification)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}
