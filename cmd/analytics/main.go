// cmd/analytics/main.go
//
// Offline analytics runner: load an order sheet and print derived dashboard
// views as JSON, without standing up the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/loader"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

func newFileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "file",
		Usage:    "Order sheet to analyze (.xlsx or .csv)",
		Required: true,
		EnvVars:  []string{"ORDERS_FILE"},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		newFileFlag(),
		&cli.StringFlag{
			Name:  "range",
			Usage: "Date range: lifetime, last_7_days, last_30_days, yearly, custom",
			Value: "lifetime",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "Custom range start (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:  "to",
			Usage: "Custom range end (YYYY-MM-DD)",
		},
		&cli.StringSliceFlag{
			Name:  "product",
			Usage: "Restrict to a product (repeatable)",
		},
		&cli.StringFlag{
			Name:  "pincode",
			Usage: "Restrict to a pincode",
		},
	}
}

func loadRecords(c *cli.Context) ([]domain.Order, error) {
	path := c.String("file")

	var (
		rows []loader.RawRow
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = loader.ReadCSV(path)
	default:
		rows, err = loader.ReadWorkbook(path)
	}
	if err != nil {
		return nil, err
	}

	return loader.Load(rows, loader.SourceSpreadsheet)
}

func buildFilter(c *cli.Context) analytics.Filter {
	filter := analytics.Filter{
		Range:    analytics.ParseDateRange(c.String("range")),
		Products: c.StringSlice("product"),
		Pincode:  c.String("pincode"),
	}
	if from, err := time.Parse("2006-01-02", c.String("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.String("to")); err == nil {
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.Range == analytics.RangeLifetime {
		filter.Range = analytics.RangeCustom
	}
	return filter
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runReport(c *cli.Context) error {
	records, err := loadRecords(c)
	if err != nil {
		return err
	}
	filtered := buildFilter(c).Apply(records, time.Now())
	return printJSON(analytics.BuildReport(filtered))
}

func runPincodes(c *cli.Context) error {
	records, err := loadRecords(c)
	if err != nil {
		return err
	}
	filtered := buildFilter(c).Apply(records, time.Now())
	return printJSON(analytics.ScorePincodes(filtered, c.String("score-product")))
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "analytics",
		Usage: "Compute order-analytics dashboard views from a sheet",
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "Print the full dashboard report",
				Flags:  filterFlags(),
				Action: runReport,
			},
			{
				Name:  "pincodes",
				Usage: "Print good/bad pincode delivery performance",
				Flags: append(filterFlags(), &cli.StringFlag{
					Name:  "score-product",
					Usage: "Score pincodes of a single product only",
				}),
				Action: runPincodes,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("analytics run failed")
	}
}
