package main

import (
	"os"
	"time"

	"github.com/eldseed/eldseed/pkg/database"
	"github.com/eldseed/eldseed/pkg/loader"
	"github.com/eldseed/eldseed/pkg/seeder"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ELDSEED_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ELDSEED_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "eldseed",
		Description: "Converts ELD driver record exports into a seed dataset for the ELD backend",

		Commands: []*cli.Command{
			loader.RegisterCLI(),
			seeder.RegisterCLI(),
			database.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
