package report

import (
	"testing"

	"foodshare/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestInferChart(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    types.Chart
	}{
		{
			name:    "two columns is a bar chart",
			columns: []string{"City", "Total_Providers"},
			want:    types.Chart{Kind: types.ChartBar, Index: "City", Values: []string{"Total_Providers"}},
		},
		{
			name:    "two columns wins over a date index",
			columns: []string{"Claim_Date", "Claims"},
			want:    types.Chart{Kind: types.ChartBar, Index: "Claim_Date", Values: []string{"Claims"}},
		},
		{
			name:    "date first column is a line chart",
			columns: []string{"Expiry_Date", "Quantity", "Listings"},
			want:    types.Chart{Kind: types.ChartLine, Index: "Expiry_Date", Values: []string{"Quantity", "Listings"}},
		},
		{
			name:    "day first column is a line chart",
			columns: []string{"Day_Of_Week", "Lunch", "Dinner"},
			want:    types.Chart{Kind: types.ChartLine, Index: "Day_Of_Week", Values: []string{"Lunch", "Dinner"}},
		},
		{
			name:    "lowercase day does not count",
			columns: []string{"Weekday", "Lunch", "Dinner"},
			want:    types.Chart{Kind: types.ChartNone},
		},
		{
			name:    "match is case sensitive",
			columns: []string{"date", "a", "b"},
			want:    types.Chart{Kind: types.ChartNone},
		},
		{
			name:    "date only in a later column",
			columns: []string{"Name", "City", "Last_Date"},
			want:    types.Chart{Kind: types.ChartNone},
		},
		{
			name:    "single column",
			columns: []string{"Total_Quantity"},
			want:    types.Chart{Kind: types.ChartNone},
		},
		{
			name:    "no columns",
			columns: nil,
			want:    types.Chart{Kind: types.ChartNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferChart(tt.columns))
		})
	}
}

func TestInferChartDoesNotAliasColumns(t *testing.T) {
	columns := []string{"City", "Count"}
	chart := InferChart(columns)
	chart.Values[0] = "changed"
	assert.Equal(t, "Count", columns[1])
}
