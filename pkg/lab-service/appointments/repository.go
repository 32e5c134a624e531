package appointments

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Appointment, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, id primitive.ObjectID, in AppointmentInput) (Appointment, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Appointment], error)
}

type mongoRepository struct {
	appointments *database.Collection[Appointment]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{appointments: database.NewCollection[Appointment](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "appointmentTime", Value: 1}}},
	{Collection: collectionName, Keys: bson.D{{Key: "email", Value: 1}}},
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]Appointment, int64, error) {
	filter := bson.M{}
	if or := helper.SearchClauses(f.Search, "patientName", "email", "phone", "testType", "doctorName"); or != nil {
		filter["$or"] = or
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if !f.Date.IsZero() {
		day := f.Date.UTC().Truncate(24 * time.Hour)
		filter["appointmentDate"] = bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)}
	}
	total, err := r.appointments.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.appointments.Find(ctx, filter, f.FindOptions("appointmentDate"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (Appointment, error) {
	return r.appointments.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Create(ctx context.Context, a Appointment) (Appointment, error) {
	a.ID = primitive.NewObjectID()
	if _, err := r.appointments.Insert(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, in AppointmentInput) (Appointment, error) {
	return r.appointments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (Appointment, error) {
	return r.appointments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         bson.M{"status": status},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.appointments.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Appointment], error) {
	return r.appointments.Grid(ctx, helper.GridPipeline(req, nil, gridColumns))
}
