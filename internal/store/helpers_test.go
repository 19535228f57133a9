package store

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"foodshare/internal/db"
	"foodshare/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *db.Provider {
	t.Helper()

	provider, err := db.NewProvider(db.DriverSQLite, filepath.Join(t.TempDir(), "food.db"))
	require.NoError(t, err)
	require.NoError(t, provider.Migrate(context.Background()))

	return provider
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newListing(name, location, providerType string, foodType types.FoodType) *types.Listing {
	return &types.Listing{
		Name:         name,
		Quantity:     10,
		ExpiryDate:   types.NewDate(2025, time.March, 17),
		ProviderID:   1,
		ProviderType: providerType,
		Location:     location,
		FoodType:     foodType,
		MealType:     types.MealTypeLunch,
	}
}
