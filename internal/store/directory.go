package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"foodshare/internal/db"
	"foodshare/internal/utils"
	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/sirupsen/logrus"
)

var (
	providerColumns = utils.QuoteIdentifiers(utils.StructTagValues(types.Provider{}))
	receiverColumns = utils.QuoteIdentifiers(utils.StructTagValues(types.Receiver{}))
)

// DirectoryRepository reads providers and receivers. Both tables are
// read-only here.
type DirectoryRepository struct {
	provider *db.Provider
	logger   *logrus.Logger
}

func NewDirectoryRepository(provider *db.Provider, logger *logrus.Logger) *DirectoryRepository {
	return &DirectoryRepository{provider: provider, logger: logger}
}

// ProvidersByCity returns an empty slice, not an error, when nothing matches.
func (r *DirectoryRepository) ProvidersByCity(ctx context.Context, city string) ([]*types.Provider, error) {
	query, args, err := r.provider.Builder().
		Select(providerColumns...).
		From(providerTableName).
		Where(sq.Eq{ident("City"): city}).
		OrderBy(ident("Provider_ID") + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate providers query: %w", err)
	}

	var providers = make([]*types.Provider, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &providers, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers for %s: %w", city, db.Classify(err))
	}

	return providers, nil
}

func (r *DirectoryRepository) ReceiversByCity(ctx context.Context, city string) ([]*types.Receiver, error) {
	query, args, err := r.provider.Builder().
		Select(receiverColumns...).
		From(receiverTableName).
		Where(sq.Eq{ident("City"): city}).
		OrderBy(ident("Receiver_ID") + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receivers query: %w", err)
	}

	var receivers = make([]*types.Receiver, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &receivers, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receivers for %s: %w", city, db.Classify(err))
	}

	return receivers, nil
}

// Cities merges the distinct cities of providers and receivers into one
// sorted list without duplicates.
func (r *DirectoryRepository) Cities(ctx context.Context) ([]string, error) {
	var cities = make([]string, 0)

	err := r.provider.With(ctx, func(conn *sql.DB) error {
		for _, table := range []string{providerTableName, receiverTableName} {
			query, args, err := r.provider.Builder().
				Select(ident("City")).
				Distinct().
				From(table).
				Where(sq.NotEq{ident("City"): nil}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to generate cities query for %s: %w", table, err)
			}

			var part []string
			if err := sqlscan.Select(ctx, conn, &part, query, args...); err != nil {
				return db.Classify(err)
			}
			cities = append(cities, part...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cities: %w", err)
	}

	slices.Sort(cities)
	cities = slices.Compact(cities)

	r.logger.WithField("cities", len(cities)).Debug("directory cities loaded")

	return cities, nil
}

// Directory bundles the providers and receivers of one city.
func (r *DirectoryRepository) Directory(ctx context.Context, city string) (*types.Directory, error) {
	providers, err := r.ProvidersByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	receivers, err := r.ReceiversByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	return &types.Directory{
		City:      city,
		Providers: providers,
		Receivers: receivers,
	}, nil
}
