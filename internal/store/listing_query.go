package store

import (
	"context"
	"database/sql"
	"fmt"

	"foodshare/internal/db"
	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/sirupsen/logrus"
)

// predicate is one optional equality constraint on a listing column.
type predicate struct {
	column string
	value  string
}

func (p predicate) active() bool {
	return p.value != "" && p.value != types.FilterAll
}

// listingPredicates returns the filter set in its fixed emission order:
// location, provider type, food type. Bound values follow the same order
// because each predicate carries its own value into the builder.
func listingPredicates(filter types.ListingFilter) []predicate {
	return []predicate{
		{column: "Location", value: filter.Location},
		{column: "Provider_Type", value: filter.ProviderType},
		{column: "Food_Type", value: filter.FoodType},
	}
}

func filteredListingsQuery(builder sq.StatementBuilderType, filter types.ListingFilter) sq.SelectBuilder {
	query := builder.Select(listingColumns...).From(listingTableName)

	for _, p := range listingPredicates(filter) {
		if !p.active() {
			continue
		}
		query = query.Where(sq.Eq{ident(p.column): p.value})
	}

	return query.OrderBy(ident("Food_ID") + " ASC")
}

// BuildFilteredListingsQuery renders the listing query for filter. Empty and
// "All" values add no predicate.
func (r *ListingRepository) BuildFilteredListingsQuery(filter types.ListingFilter) (string, []any, error) {
	return filteredListingsQuery(r.provider.Builder(), filter).ToSql()
}

func (r *ListingRepository) FilteredListings(ctx context.Context, filter types.ListingFilter) ([]*types.Listing, error) {
	query, args, err := r.BuildFilteredListingsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to generate filtered listings query: %w", err)
	}

	var listings = make([]*types.Listing, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &listings, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered listings: %w", db.Classify(err))
	}

	r.logger.WithFields(logrus.Fields{
		"op":   "filtered_listings",
		"args": len(args),
		"rows": len(listings),
	}).Debug("store query")

	return listings, nil
}

func (r *ListingRepository) DistinctLocations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "Location")
}

func (r *ListingRepository) DistinctProviderTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "Provider_Type")
}

func (r *ListingRepository) DistinctFoodTypes(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "Food_Type")
}

// FilterOptions gathers the selectable values of every filter column. The
// three reads are independent and not atomic relative to each other.
func (r *ListingRepository) FilterOptions(ctx context.Context) (*types.ListingFilterOptions, error) {
	locations, err := r.DistinctLocations(ctx)
	if err != nil {
		return nil, err
	}

	providerTypes, err := r.DistinctProviderTypes(ctx)
	if err != nil {
		return nil, err
	}

	foodTypes, err := r.DistinctFoodTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &types.ListingFilterOptions{
		Locations:     locations,
		ProviderTypes: providerTypes,
		FoodTypes:     foodTypes,
	}, nil
}

func (r *ListingRepository) distinct(ctx context.Context, column string) ([]string, error) {
	query, args, err := r.provider.Builder().
		Select(ident(column)).
		Distinct().
		From(listingTableName).
		Where(sq.NotEq{ident(column): nil}).
		OrderBy(ident(column) + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate distinct %s query: %w", column, err)
	}

	var values = make([]string, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &values, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct %s values: %w", column, db.Classify(err))
	}

	return values, nil
}
