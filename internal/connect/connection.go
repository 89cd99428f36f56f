package connect

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The MongoDB client is process-wide and initialized at most once.
// sync.Once gives single-flight semantics: concurrent first callers block on
// the same in-flight connect instead of opening a second one, and the
// resolved client (or error) is reused for the rest of the process lifetime.
var (
	mongoOnce   sync.Once
	mongoClient *mongo.Client
	mongoErr    error
)

// MongoClient takes the connection string from config so the fail-fast
// validation in LoadConfig stays the single source of truth for it.
func MongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	mongoOnce.Do(func() {
		if uri == "" {
			mongoErr = fmt.Errorf("mongodb connection string is empty")
			return
		}

		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if err != nil {
			mongoErr = fmt.Errorf("failed to connect to MongoDB: %v", err)
			return
		}

		if err := client.Ping(connectCtx, nil); err != nil {
			mongoErr = fmt.Errorf("failed to ping MongoDB: %v", err)
			return
		}

		mongoClient = client
	})

	return mongoClient, mongoErr
}

func MongoDisconnect() error {
	if mongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %v", err)
	}
	return nil
}

func CloudinaryCredentials() (*cloudinary.Cloudinary, error) {
	cloudinaryName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	cld, err := cloudinary.NewFromParams(
		cloudinaryName,
		apiKey,
		apiSecret,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	return cld, nil
}
