package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := NewDate(2025, time.March, 17)

	for _, input := range []string{"2025-03-17", "3/17/2025", " 2025-03-17 ", "2025-03-17T10:30:00Z", "2025-03-17 23:59:59"} {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.True(t, want.Equal(got), input)
	}

	_, err := ParseDate("17th March")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-02-29"))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan([]byte("2024-12-31")))
	assert.Equal(t, "2024-12-31", d.String())

	require.NoError(t, d.Scan(time.Date(2023, time.June, 5, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-06-05", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValueAndJSON(t *testing.T) {
	d := NewDate(2025, time.January, 9)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-09", v)

	data, err := json.Marshal(struct {
		Expiry Date `json:"expiry"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"expiry":"2025-01-09"}`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"1/9/2025"`), &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestListingEnums(t *testing.T) {
	assert.True(t, FoodTypeNonVegetarian.Valid())
	assert.False(t, FoodType("vegan").Valid())
	assert.True(t, MealTypeSnacks.Valid())
	assert.False(t, MealType("Brunch").Valid())
}

func TestMutationResultFound(t *testing.T) {
	assert.False(t, MutationResult{ID: 3}.Found())
	assert.True(t, MutationResult{ID: 3, RowsAffected: 1}.Found())
}
