package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"foodshare/internal/db"
	"foodshare/internal/report"
	"foodshare/internal/utils"
	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

const (
	ProvidersFile = "providers_data.csv"
	ReceiversFile = "receivers_data.csv"
	ListingsFile  = "food_listings_data.csv"
)

type Summary struct {
	Providers int64
	Receivers int64
	Listings  int64
}

// record is one CSV row addressed by header name.
type record map[string]string

func (r record) int64(column string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(r[column]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", column, err)
	}
	return v, nil
}

type step struct {
	file    string
	table   string
	count   *int64
	convert func(record) (map[string]any, error)
}

// Load bulk inserts the provider, receiver and listing exports found in
// dir. Rows whose key already exists are skipped, so running it twice is
// harmless. Missing files are skipped with a warning.
func Load(ctx context.Context, provider *db.Provider, dir string, logger *logrus.Logger) (*Summary, error) {
	if err := provider.Migrate(ctx); err != nil {
		return nil, err
	}

	summary := new(Summary)
	steps := []step{
		{file: ProvidersFile, table: `"Providers"`, count: &summary.Providers, convert: providerRow},
		{file: ReceiversFile, table: `"Receivers"`, count: &summary.Receivers, convert: receiverRow},
		{file: ListingsFile, table: `"Food_Listings"`, count: &summary.Listings, convert: listingRow},
	}

	for _, s := range steps {
		path := filepath.Join(dir, s.file)

		rows, err := readRows(path, s.convert)
		if errors.Is(err, fs.ErrNotExist) {
			logger.WithField("file", path).Warn("seed file missing, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		n, err := insertRows(ctx, provider, s.table, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", s.table, err)
		}
		*s.count = n

		logger.WithFields(logrus.Fields{
			"table":    s.table,
			"read":     len(rows),
			"inserted": n,
		}).Info("seeded table")
	}

	return summary, nil
}

func readRows(path string, convert func(record) (map[string]any, error)) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := report.ReadTable(f)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(table.Rows))
	for i, cells := range table.Rows {
		rec := make(record, len(table.Columns))
		for j, column := range table.Columns {
			rec[strings.TrimSpace(column)] = cells[j]
		}

		row, err := convert(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func insertRows(ctx context.Context, provider *db.Provider, table string, rows []map[string]any) (int64, error) {
	var inserted int64

	err := provider.With(ctx, func(conn *sql.DB) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return db.Classify(err)
		}
		defer func() { _ = tx.Rollback() }()

		for _, row := range rows {
			n, err := insertRow(ctx, tx, provider.Builder(), table, row)
			if err != nil {
				return err
			}
			inserted += n
		}

		if table == `"Food_Listings"` {
			if err := provider.ResyncSequence(ctx, tx); err != nil {
				return err
			}
		}

		return db.Classify(tx.Commit())
	})

	return inserted, err
}

func insertRow(ctx context.Context, tx *sql.Tx, builder sq.StatementBuilderType, table string, row map[string]any) (int64, error) {
	query, args, err := builder.
		Insert(table).
		SetMap(utils.QuoteKeys(row)).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate seed insert: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, db.Classify(err)
	}

	return res.RowsAffected()
}

func providerRow(rec record) (map[string]any, error) {
	id, err := rec.int64("Provider_ID")
	if err != nil {
		return nil, err
	}

	return utils.StructToMap(types.Provider{
		ID:      id,
		Name:    rec["Name"],
		Type:    rec["Type"],
		Contact: rec["Contact"],
		Address: rec["Address"],
		City:    utils.NilIfEmpty(rec["City"]),
	}), nil
}

func receiverRow(rec record) (map[string]any, error) {
	id, err := rec.int64("Receiver_ID")
	if err != nil {
		return nil, err
	}

	return utils.StructToMap(types.Receiver{
		ID:      id,
		Name:    rec["Name"],
		Type:    rec["Type"],
		Contact: rec["Contact"],
		City:    utils.NilIfEmpty(rec["City"]),
	}), nil
}

func listingRow(rec record) (map[string]any, error) {
	id, err := rec.int64("Food_ID")
	if err != nil {
		return nil, err
	}

	quantity, err := rec.int64("Quantity")
	if err != nil {
		return nil, err
	}

	providerID, err := rec.int64("Provider_ID")
	if err != nil {
		return nil, err
	}

	expiry, err := types.ParseDate(rec["Expiry_Date"])
	if err != nil {
		return nil, fmt.Errorf("column Expiry_Date: %w", err)
	}

	listing := types.Listing{
		ID:           id,
		Name:         rec["Food_Name"],
		Quantity:     int(quantity),
		ExpiryDate:   expiry,
		ProviderID:   providerID,
		ProviderType: rec["Provider_Type"],
		Location:     rec["Location"],
		FoodType:     types.FoodType(rec["Food_Type"]),
		MealType:     types.MealType(rec["Meal_Type"]),
	}

	if !listing.FoodType.Valid() || !listing.MealType.Valid() {
		return nil, fmt.Errorf("%w: food type %q meal type %q", types.ErrInvalidListing, listing.FoodType, listing.MealType)
	}

	return utils.StructToMap(listing), nil
}
