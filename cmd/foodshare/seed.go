package main

import (
	"context"
	"fmt"

	"foodshare/internal/db"
	"foodshare/internal/seed"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Load provider, receiver and listing CSV exports into the store",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Directory holding " + seed.ProvidersFile + ", " + seed.ReceiversFile + " and " + seed.ListingsFile,
			Value:   "data",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := newLogger(cfg, false)
		if err != nil {
			return err
		}

		ctx := context.Background()

		provider, err := db.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to configure database: %w", err)
		}

		summary, err := seed.Load(ctx, provider, c.String("dir"), logger)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"providers": summary.Providers,
			"receivers": summary.Receivers,
			"listings":  summary.Listings,
		}).Info("seed complete")

		return nil
	},
}
