package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connect opens a client against uri and pings the primary. Driver defaults
// are kept for pooling and timeouts. The caller owns the client and must
// call Disconnect on shutdown.
func Connect(ctx context.Context, uri string, log logrus.FieldLogger) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Info("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

func Disconnect(ctx context.Context, client *mongo.Client, log logrus.FieldLogger) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Error("mongo disconnect failed")
		return
	}
	log.Info("Disconnected from MongoDB")
}
