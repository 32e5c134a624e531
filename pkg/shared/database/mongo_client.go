package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// By default create shared db connection
var SharedDB *mongo.Database

func Init() error {
	dbName := helper.GetenvStr("MONGO_DB_NAME", "medicare")
	uri := helper.GetenvStr("MONGO_URI", "")
	if uri == "" {
		uri = BuildURI(
			helper.GetenvStr("MONGO_HOST", "localhost"),
			helper.GetenvInt("MONGO_PORT", 27017),
			dbName,
			helper.GetenvStr("MONGO_USER", ""),
			helper.GetenvStr("MONGO_PASSWORD", ""),
		)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	db, err := Connect(ctx, uri, dbName)
	if err != nil {
		return err
	}
	SharedDB = db
	helper.Logger.Info().Str("db", dbName).Msg("mongo connected")
	return nil
}

// BuildURI assembles a connection string from discrete settings. Credentials are optional.
func BuildURI(host string, port int, dbName string, userid string, pwd string) string {
	if userid == "" {
		return fmt.Sprintf("mongodb://%s:%d/%s", host, port, dbName)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/%s?retryWrites=true&authSource=admin&w=majority&authMechanism=SCRAM-SHA-256",
		url.QueryEscape(userid), url.QueryEscape(pwd), host, port, dbName)
}

func Connect(ctx context.Context, uri string, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	// Check the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return client.Database(dbName), nil
}

func Disconnect(ctx context.Context) error {
	if SharedDB == nil {
		return nil
	}
	return SharedDB.Client().Disconnect(ctx)
}

// Ping reports whether the shared database answers; used by the health endpoint.
func Ping(ctx context.Context) error {
	if SharedDB == nil {
		return fmt.Errorf("database not initialised")
	}
	return SharedDB.Client().Ping(ctx, readpref.Primary())
}
