package database

import (
	"context"

	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/rs/zerolog/log"
)

// ImportSeedData loads a generated seed document straight into MongoDB - the
// same inserts the generated shell script performs, without the shell.
func ImportSeedData(seedData *eldrecord.SeedData) error {
	ctx := context.Background()

	if _, err := GetCollection("carriers").InsertOne(ctx, seedData.Carrier); err != nil {
		return err
	}

	drivers := make([]interface{}, len(seedData.Drivers))
	for i, driver := range seedData.Drivers {
		drivers[i] = driver
	}
	if _, err := GetCollection("drivers").InsertMany(ctx, drivers); err != nil {
		return err
	}

	assets := make([]interface{}, len(seedData.Assets))
	for i, asset := range seedData.Assets {
		assets[i] = asset
	}
	if _, err := GetCollection("assets").InsertMany(ctx, assets); err != nil {
		return err
	}

	logBooks := make([]interface{}, len(seedData.LogBooks))
	for i, logBook := range seedData.LogBooks {
		logBooks[i] = logBook
	}
	if _, err := GetCollection("logbooks").InsertMany(ctx, logBooks); err != nil {
		return err
	}

	log.Info().
		Str("carrier", seedData.Carrier.Name).
		Int("drivers", len(seedData.Drivers)).
		Int("assets", len(seedData.Assets)).
		Int("logBooks", len(seedData.LogBooks)).
		Int("dutyEvents", seedData.DutyEventCount()).
		Msg("ELD data imported")

	return nil
}
