package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID      int64  `db:"Food_ID"`
	Name    string `db:"Food_Name"`
	Skipped string `db:"-"`
	NoTag   string
	hidden  string `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"Food_ID", "Food_Name"}, StructTagValues(sample{}))
	assert.Equal(t, []string{"Food_ID", "Food_Name"}, StructTagValues(&sample{}))
	assert.Panics(t, func() { StructTagValues("nope") })
}

func TestStructToMap(t *testing.T) {
	s := sample{ID: 4, Name: "Rice", hidden: "x"}

	assert.Equal(t, map[string]any{"Food_ID": int64(4), "Food_Name": "Rice"}, StructToMap(s))
	assert.Equal(t, map[string]any{"Food_Name": "Rice"}, StructToMap(&s, "Food_ID"))
}

func TestQuoteIdentifier(t *testing.T) {
	assert.Equal(t, `"Food_Listings"`, QuoteIdentifier("Food_Listings"))
	assert.Equal(t, `"odd""name"`, QuoteIdentifier(`odd"name`))
	assert.Equal(t, []string{`"a"`, `"B"`}, QuoteIdentifiers([]string{"a", "B"}))
	assert.Equal(t, map[string]any{`"Quantity"`: 3}, QuoteKeys(map[string]any{"Quantity": 3}))
}

func TestRequestID(t *testing.T) {
	a, b := RequestID(), RequestID()
	assert.Len(t, a, RequestIDSize)
	assert.NotEqual(t, a, b)
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "failed to look up provider"))

	base := errors.New("boom")
	err := ErrorWrapOrNil(base, "failed to look up provider")
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "failed to look up provider: boom", err.Error())

	assert.Same(t, base, ErrorWrapOrNil(base, ""))
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, NilIfEmpty(""))
	if got := NilIfEmpty("Pune"); assert.NotNil(t, got) {
		assert.Equal(t, "Pune", *got)
	}
}
