package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"foodshare/internal/db"
	"foodshare/internal/store"
	"foodshare/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var listingsCommand = &cli.Command{
	Name:  "listings",
	Usage: "Print food listings matching the given filters",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "location", Usage: "City / location", Value: types.FilterAll},
		&cli.StringFlag{Name: "provider-type", Usage: "Provider type", Value: types.FilterAll},
		&cli.StringFlag{Name: "food-type", Usage: "Vegetarian, Non-Vegetarian or Vegan", Value: types.FilterAll},
		&cli.BoolFlag{Name: "options", Usage: "Print the available filter values instead"},
		&cli.BoolFlag{Name: "dump", Usage: "Pretty print the raw records"},
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

		provider, err := db.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to configure database: %w", err)
		}

		ctx := context.Background()
		repo := store.NewListingRepository(provider, logger)

		if c.Bool("options") {
			options, err := repo.FilterOptions(ctx)
			if err != nil {
				return err
			}
			_, err = pp.Println(options)
			return err
		}

		listings, err := repo.FilteredListings(ctx, types.ListingFilter{
			Location:     c.String("location"),
			ProviderType: c.String("provider-type"),
			FoodType:     c.String("food-type"),
		})
		if err != nil {
			return err
		}

		if c.Bool("dump") {
			_, err = pp.Println(listings)
			return err
		}

		if err := printListings(os.Stdout, listings); err != nil {
			return err
		}

		fmt.Printf("Found %d matching food items\n", len(listings))
		return nil
	},
}

func printListings(out io.Writer, listings []*types.Listing) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tEXPIRY\tPROVIDER TYPE\tLOCATION\tFOOD TYPE\tMEAL TYPE")
	for _, l := range listings {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.Name, l.Quantity, l.ExpiryDate, l.ProviderType, l.Location, l.FoodType, l.MealType)
	}
	return w.Flush()
}
