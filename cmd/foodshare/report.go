package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"foodshare/internal/report"
	"foodshare/pkg/types"

	"github.com/urfave/cli/v2"
)

var reportCommand = &cli.Command{
	Name:      "report",
	Usage:     "Show a precomputed report and the chart it would get",
	ArgsUsage: "<label or slug>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "list", Aliases: []string{"l"}, Usage: "List available reports"},
	},
	Action: func(c *cli.Context) error {
		if c.Bool("list") || c.NArg() == 0 {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tLABEL\tFILE")
			for _, def := range report.Definitions {
				fmt.Fprintf(w, "%s\t%s\t%s\n", def.Slug, def.Label, def.File)
			}
			return w.Flush()
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err := newLogger(cfg, false)
		if err != nil {
			return err
		}

		ctx := context.Background()

		source, err := newReportSource(ctx, cfg)
		if err != nil {
			return err
		}

		loaded, err := report.NewLoader(source, logger).Load(ctx, strings.Join(c.Args().Slice(), " "))
		if errors.Is(err, types.ErrNotFound) {
			fmt.Println("Report not found:", err)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d rows)\n\n", loaded.Label, len(loaded.Table.Rows))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(loaded.Table.Columns, "\t"))
		for _, row := range loaded.Table.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		switch loaded.Chart.Kind {
		case types.ChartNone:
			fmt.Println("\nNo chart available for this report.")
		default:
			fmt.Printf("\nChart: %s by %s of %s\n", loaded.Chart.Kind, loaded.Chart.Index, strings.Join(loaded.Chart.Values, ", "))
		}

		return nil
	},
}
