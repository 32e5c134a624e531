package authentication

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (User, error)
	Create(ctx context.Context, u User) (User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, in ProfileInput) (User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

type mongoRepository struct {
	users *database.Collection[User]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{users: database.NewCollection[User](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "email", Value: 1}}, Unique: true},
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.users.FindOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (User, error) {
	return r.users.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Create(ctx context.Context, u User) (User, error) {
	u.ID = primitive.NewObjectID()
	if _, err := r.users.Insert(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *mongoRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, in ProfileInput) (User, error) {
	return r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         bson.M{"password": hash},
		"$currentDate": bson.M{"updatedAt": true},
	})
	return err
}
