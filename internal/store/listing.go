package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodshare/internal/db"
	"foodshare/internal/utils"
	"foodshare/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/sirupsen/logrus"
)

var listingColumns = utils.QuoteIdentifiers(utils.StructTagValues(types.Listing{}))

// ListingRepository is the CRUD service over Food_Listings. It holds no
// rows in memory; every call reads the store again.
type ListingRepository struct {
	provider *db.Provider
	logger   *logrus.Logger

	validateProviderRef bool
}

func NewListingRepository(provider *db.Provider, logger *logrus.Logger) *ListingRepository {
	return &ListingRepository{provider: provider, logger: logger}
}

// ValidateProviderRef makes CreateListing reject provider ids with no
// matching row in Providers. Off by default, the reference is loose.
func (r *ListingRepository) ValidateProviderRef(enabled bool) *ListingRepository {
	r.validateProviderRef = enabled
	return r
}

func validateListing(listing *types.Listing) error {
	switch {
	case listing.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", types.ErrInvalidListing)
	case listing.ProviderID < 1:
		return fmt.Errorf("%w: provider id must be at least 1", types.ErrInvalidListing)
	case !listing.FoodType.Valid():
		return fmt.Errorf("%w: unknown food type %q", types.ErrInvalidListing, listing.FoodType)
	case !listing.MealType.Valid():
		return fmt.Errorf("%w: unknown meal type %q", types.ErrInvalidListing, listing.MealType)
	case listing.ExpiryDate.IsZero():
		return fmt.Errorf("%w: expiry date is required", types.ErrInvalidListing)
	}

	return nil
}

// CreateListing inserts listing and writes the store assigned id back
// into it.
func (r *ListingRepository) CreateListing(ctx context.Context, listing *types.Listing) error {
	if err := validateListing(listing); err != nil {
		return err
	}

	values := utils.QuoteKeys(utils.StructToMap(listing, "Food_ID"))

	query, args, err := r.provider.Builder().
		Insert(listingTableName).
		SetMap(values).
		Suffix("RETURNING " + ident("Food_ID")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert listing query: %w", err)
	}

	err = r.provider.With(ctx, func(conn *sql.DB) error {
		if r.validateProviderRef {
			if err := r.providerExists(ctx, conn, listing.ProviderID); err != nil {
				return err
			}
		}

		return conn.QueryRowContext(ctx, query, args...).Scan(&listing.ID)
	})
	if errors.Is(err, types.ErrProviderNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", db.Classify(err))
	}

	r.logger.WithFields(logrus.Fields{
		"op":      "create_listing",
		"food_id": listing.ID,
	}).Debug("store mutation")

	return nil
}

func (r *ListingRepository) providerExists(ctx context.Context, conn *sql.DB, providerID int64) error {
	query, args, err := r.provider.Builder().
		Select("1").
		From(providerTableName).
		Where(sq.Eq{ident("Provider_ID"): providerID}).
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate provider lookup query: %w", err)
	}

	var one int
	err = conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: provider %d", types.ErrProviderNotFound, providerID)
	}

	return utils.ErrorWrapOrNil(err, "failed to look up provider")
}

// Listings reads at most limit rows in insertion order.
func (r *ListingRepository) Listings(ctx context.Context, limit uint64) ([]*types.Listing, error) {
	query, args, err := r.provider.Builder().
		Select(listingColumns...).
		From(listingTableName).
		OrderBy(ident("Food_ID") + " ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate listings query: %w", err)
	}

	var listings = make([]*types.Listing, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &listings, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", db.Classify(err))
	}

	return listings, nil
}

func (r *ListingRepository) Listing(ctx context.Context, foodID int64) (*types.Listing, error) {
	query, args, err := r.provider.Builder().
		Select(listingColumns...).
		From(listingTableName).
		Where(sq.Eq{ident("Food_ID"): foodID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing query: %w", err)
	}

	var listing = new(types.Listing)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Get(ctx, conn, listing, query, args...)
	})
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, types.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing %d: %w", foodID, db.Classify(err))
	}

	return listing, nil
}

// UpdateListing overwrites quantity and expiry of foodID. A missing id
// affects zero rows and is reported through the result, not as an error.
func (r *ListingRepository) UpdateListing(ctx context.Context, foodID int64, update types.ListingUpdate) (types.MutationResult, error) {
	result := types.MutationResult{ID: foodID}

	if update.Quantity < 0 {
		return result, fmt.Errorf("%w: quantity must not be negative", types.ErrInvalidListing)
	}
	if update.ExpiryDate.IsZero() {
		return result, fmt.Errorf("%w: expiry date is required", types.ErrInvalidListing)
	}

	query, args, err := r.provider.Builder().
		Update(listingTableName).
		Set(ident("Quantity"), update.Quantity).
		Set(ident("Expiry_Date"), update.ExpiryDate).
		Where(sq.Eq{ident("Food_ID"): foodID}).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to generate update listing query for listing %d: %w", foodID, err)
	}

	result.RowsAffected, err = r.exec(ctx, query, args)
	if err != nil {
		return result, fmt.Errorf("failed to update listing %d: %w", foodID, err)
	}

	r.logMutation("update_listing", result)
	return result, nil
}

// DeleteListing removes foodID. Like UpdateListing a missing id is not an
// error.
func (r *ListingRepository) DeleteListing(ctx context.Context, foodID int64) (types.MutationResult, error) {
	result := types.MutationResult{ID: foodID}

	query, args, err := r.provider.Builder().
		Delete(listingTableName).
		Where(sq.Eq{ident("Food_ID"): foodID}).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("failed to generate delete listing query for listing %d: %w", foodID, err)
	}

	result.RowsAffected, err = r.exec(ctx, query, args)
	if err != nil {
		return result, fmt.Errorf("failed to delete listing %d: %w", foodID, err)
	}

	r.logMutation("delete_listing", result)
	return result, nil
}

// ListingIDs returns every current id in ascending order.
func (r *ListingRepository) ListingIDs(ctx context.Context) ([]int64, error) {
	query, args, err := r.provider.Builder().
		Select(ident("Food_ID")).
		From(listingTableName).
		OrderBy(ident("Food_ID") + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate listing ids query: %w", err)
	}

	var ids = make([]int64, 0)
	err = r.provider.With(ctx, func(conn *sql.DB) error {
		return sqlscan.Select(ctx, conn, &ids, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing ids: %w", db.Classify(err))
	}

	return ids, nil
}

func (r *ListingRepository) exec(ctx context.Context, query string, args []any) (int64, error) {
	var affected int64
	err := r.provider.With(ctx, func(conn *sql.DB) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		affected, err = res.RowsAffected()
		return err
	})

	return affected, db.Classify(err)
}

func (r *ListingRepository) logMutation(op string, result types.MutationResult) {
	entry := r.logger.WithFields(logrus.Fields{
		"op":      op,
		"food_id": result.ID,
		"rows":    result.RowsAffected,
	})

	if !result.Found() {
		entry.Info("listing not found, nothing changed")
		return
	}

	entry.Debug("store mutation")
}
