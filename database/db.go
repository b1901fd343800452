package database

import (
	"context"
	"time"

	"serenemind/config"
	"serenemind/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Name of the application database. Every collection lives under it.
const dbName = "serenemind"

const connectTimeout = 10 * time.Second

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("InitDB: failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("InitDB: failed to ping MongoDB", zap.String("url", config.AppConfig.DatabaseURL), zap.Error(err))
	}

	MongoClient = client
	logger.Info("InitDB: connected to MongoDB", zap.String("database", dbName))
}

// Collection returns a handle to a named collection in the app database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(dbName).Collection(name)
}
