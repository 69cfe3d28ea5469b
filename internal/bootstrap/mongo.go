package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/gavinjunior/portfolio-backend/config"
)

// OpenMongo connects to the document store and returns the projects
// collection. The ping runs once so a bad URI is reported at startup.
func OpenMongo(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Collection, error) {
	if cfg.URI == "" {
		return nil, nil, fmt.Errorf("MONGODB_URI is not set")
	}
	connectTO := cfg.ConnectTimeout
	if connectTO == 0 {
		connectTO = 10 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, connectTO)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().
		ApplyURI(cfg.URI).
		SetAppName("portfolio-api").
		SetServerSelectionTimeout(connectTO))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Name).Collection(cfg.Collection), nil
}
