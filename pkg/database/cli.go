package database

import (
	"github.com/eldseed/eldseed/pkg/config"
	"github.com/eldseed/eldseed/pkg/eldrecord"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Load a generated seed dataset into MongoDB",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "seed-file",
				Usage: "Path of the generated seed dataset",
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

			seedFile := c.String("seed-file")
			if seedFile == "" {
				seedFile = conf.Files.SeedData
			}

			seedData, err := eldrecord.LoadSeedFile(seedFile)
			if err != nil {
				return err
			}

			if err := Connect(); err != nil {
				return err
			}

			return ImportSeedData(seedData)
		},
	}
}
