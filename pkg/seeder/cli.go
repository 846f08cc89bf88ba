package seeder

import (
	"github.com/eldseed/eldseed/pkg/config"
	"github.com/eldseed/eldseed/pkg/importscript"
	"github.com/eldseed/eldseed/pkg/parser"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Parse the driver records CSV & generate the seed dataset and import script",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Path of the driver records CSV",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path of the config file",
			},
		},
		Action: func(c *cli.Context) error {
			conf, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			csvPath := c.String("csv")
			if csvPath == "" {
				csvPath = conf.Files.RecordsCSV
			}

			records, err := parser.ReadRecords(csvPath, conf.Parser.SkipRows)
			if err != nil {
				return err
			}

			log.Info().
				Str("carrier", conf.Carrier.Name).
				Str("dotNumber", conf.Carrier.DOTNumber).
				Int("records", len(records)).
				Msg("ELD driver records analysis")

			parser.Analyse(records).LogReport()

			result := NewBuilder(conf).Build(records)
			seedData := result.SeedData

			if err := seedData.WriteFile(conf.Files.SeedData); err != nil {
				return err
			}

			if err := importscript.WriteFile(seedData, conf.Database.Name, conf.Files.ImportScript); err != nil {
				return err
			}

			log.Info().
				Int("drivers", len(seedData.Drivers)).
				Int("assets", len(seedData.Assets)).
				Int("logBooks", len(seedData.LogBooks)).
				Int("dutyEvents", seedData.DutyEventCount()).
				Int("skippedRows", result.SkippedRows).
				Str("seedFile", conf.Files.SeedData).
				Str("importScript", conf.Files.ImportScript).
				Msg("Generated seed data")

			return nil
		},
	}
}
