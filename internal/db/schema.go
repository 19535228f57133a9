package db

import (
	"context"
	"database/sql"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Providers" (
		"Provider_ID" INTEGER PRIMARY KEY,
		"Name"        TEXT NOT NULL,
		"Type"        TEXT NOT NULL DEFAULT '',
		"Contact"     TEXT NOT NULL DEFAULT '',
		"Address"     TEXT NOT NULL DEFAULT '',
		"City"        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Receivers" (
		"Receiver_ID" INTEGER PRIMARY KEY,
		"Name"        TEXT NOT NULL,
		"Type"        TEXT NOT NULL DEFAULT '',
		"Contact"     TEXT NOT NULL DEFAULT '',
		"City"        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Food_Listings" (
		"Food_ID"       INTEGER PRIMARY KEY AUTOINCREMENT,
		"Food_Name"     TEXT NOT NULL,
		"Quantity"      INTEGER NOT NULL CHECK ("Quantity" >= 0),
		"Expiry_Date"   TEXT NOT NULL,
		"Provider_ID"   INTEGER NOT NULL,
		"Provider_Type" TEXT NOT NULL DEFAULT '',
		"Location"      TEXT NOT NULL DEFAULT '',
		"Food_Type"     TEXT NOT NULL,
		"Meal_Type"     TEXT NOT NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Providers" (
		"Provider_ID" BIGINT PRIMARY KEY,
		"Name"        TEXT NOT NULL,
		"Type"        TEXT NOT NULL DEFAULT '',
		"Contact"     TEXT NOT NULL DEFAULT '',
		"Address"     TEXT NOT NULL DEFAULT '',
		"City"        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Receivers" (
		"Receiver_ID" BIGINT PRIMARY KEY,
		"Name"        TEXT NOT NULL,
		"Type"        TEXT NOT NULL DEFAULT '',
		"Contact"     TEXT NOT NULL DEFAULT '',
		"City"        TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS "Food_Listings" (
		"Food_ID"       BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		"Food_Name"     TEXT NOT NULL,
		"Quantity"      INTEGER NOT NULL CHECK ("Quantity" >= 0),
		"Expiry_Date"   DATE NOT NULL,
		"Provider_ID"   BIGINT NOT NULL,
		"Provider_Type" TEXT NOT NULL DEFAULT '',
		"Location"      TEXT NOT NULL DEFAULT '',
		"Food_Type"     TEXT NOT NULL,
		"Meal_Type"     TEXT NOT NULL
	)`,
}

// Migrate creates the listing, provider and receiver tables when they do
// not exist yet. Existing tables are left untouched.
func (p *Provider) Migrate(ctx context.Context) error {
	statements := sqliteSchema
	if p.driver == DriverPgx {
		statements = postgresSchema
	}

	return p.With(ctx, func(conn *sql.DB) error {
		for _, stmt := range statements {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", Classify(err))
			}
		}
		return nil
	})
}

// resyncListingSequence leaves the identity uncalled at MAX+1 so the next
// insert gets exactly that id, including 1 on an empty table.
const resyncListingSequence = `SELECT setval(pg_get_serial_sequence('"Food_Listings"', 'Food_ID'), COALESCE(MAX("Food_ID"), 0) + 1, false) FROM "Food_Listings"`

// ResyncSequence moves the Food_ID identity past explicitly inserted ids.
// sqlite AUTOINCREMENT tracks this on its own.
func (p *Provider) ResyncSequence(ctx context.Context, tx *sql.Tx) error {
	if p.driver != DriverPgx {
		return nil
	}

	_, err := tx.ExecContext(ctx, resyncListingSequence)
	if err != nil {
		return fmt.Errorf("failed to resync listing sequence: %w", Classify(err))
	}
	return nil
}
