package main

import (
	"context"
	"time"

	"slotswap-service/internal/app/config"
	"slotswap-service/internal/app/drivers/database"
	"slotswap-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes the insert-retry code generation depends
// on. Safe to run repeatedly; mongo treats an existing identical index
// as a no-op.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []struct {
		collection string
		field      string
	}{
		{constvars.MongoCollectionUsers, "username"},
		{constvars.MongoCollectionUsers, "email"},
		{constvars.MongoCollectionSlots, "slotId"},
		{constvars.MongoCollectionSwapRequests, "requestCode"},
	}

	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			logrus.Fatalf("Error creating unique index on %s.%s: %v", idx.collection, idx.field, err)
		}
		logrus.Infof("Ensured unique index %s on %s.%s", name, idx.collection, idx.field)
	}

	if err := client.Disconnect(ctx); err != nil {
		logrus.Fatalf("Error disconnecting from mongo: %v", err)
	}
	logrus.Println("Migration completed!")
}
