package patients

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]PatientForm, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (PatientForm, error)
	Create(ctx context.Context, p PatientForm) (PatientForm, error)
	Update(ctx context.Context, id primitive.ObjectID, in PatientInput) (PatientForm, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[PatientForm], error)
}

type mongoRepository struct {
	forms *database.Collection[PatientForm]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{forms: database.NewCollection[PatientForm](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "email", Value: 1}}},
	{Collection: collectionName, Keys: bson.D{{Key: "status", Value: 1}, {Key: "preferredDate", Value: 1}}},
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]PatientForm, int64, error) {
	filter := bson.M{}
	if or := helper.SearchClauses(f.Search, "fullName", "email", "phone", "reason"); or != nil {
		filter["$or"] = or
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	total, err := r.forms.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.forms.Find(ctx, filter, f.FindOptions("createdAt"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (PatientForm, error) {
	return r.forms.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Create(ctx context.Context, p PatientForm) (PatientForm, error) {
	p.ID = primitive.NewObjectID()
	if _, err := r.forms.Insert(ctx, p); err != nil {
		return PatientForm{}, err
	}
	return p, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, in PatientInput) (PatientForm, error) {
	return r.forms.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.forms.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[PatientForm], error) {
	return r.forms.Grid(ctx, helper.GridPipeline(req, nil, gridColumns))
}
