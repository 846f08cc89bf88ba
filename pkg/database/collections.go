package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	// Carriers
	carriersCollection := GetCollection("carriers")
	_, err := carriersCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "dotNumber", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Drivers
	driversCollection := GetCollection("drivers")
	_, err = driversCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "carrierId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "licenseNumber", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Assets
	assetsCollection := GetCollection("assets")
	_, err = assetsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "carrierId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "vehicleNumber", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	// Log Books
	logBooksCollection := GetCollection("logbooks")
	_, err = logBooksCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "carrierId", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "driverId", Value: 1},
				{Key: "logDate", Value: 1},
			},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
