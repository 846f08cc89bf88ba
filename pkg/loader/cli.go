package loader

import (
	"github.com/eldseed/eldseed/pkg/config"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Read the spreadsheet export & write the row-oriented sidecar files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path of the spreadsheet export",
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

			filePath := c.String("file")
			if filePath == "" {
				filePath = conf.Files.Spreadsheet
			}

			return Run(conf, filePath)
		},
	}
}
