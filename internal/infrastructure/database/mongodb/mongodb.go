package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

const defaultDatabase = "storefront"

// ConnectToMongoDB dials the cluster in uri. A non-empty password replaces the one in the
// uri so the secret can be kept out of the stored connection string.
func ConnectToMongoDB(ctx context.Context, uri string, password string) (*mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, err
	}

	clientOptions := options.Client().ApplyURI(uri).SetMonitor(otelmongo.NewMonitor())
	if password != "" && clientOptions.Auth != nil {
		clientOptions.Auth.Password = password
		clientOptions.Auth.PasswordSet = true
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	return client.Database(dbName), nil
}
