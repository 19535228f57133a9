package report

import (
	"strings"

	"foodshare/pkg/types"
)

type chartRule struct {
	kind  types.ChartKind
	match func(columns []string) bool
}

// chartRules is evaluated top to bottom and the first match wins, so a
// two column table with a date first column is still a bar chart.
var chartRules = []chartRule{
	{kind: types.ChartBar, match: twoColumns},
	{kind: types.ChartLine, match: temporalIndex},
}

func twoColumns(columns []string) bool {
	return len(columns) == 2
}

func temporalIndex(columns []string) bool {
	if len(columns) == 0 {
		return false
	}
	return strings.Contains(columns[0], "Date") || strings.Contains(columns[0], "Day")
}

// InferChart picks a chart shape from column names alone. The first column
// is the index, the rest are plotted values.
func InferChart(columns []string) types.Chart {
	for _, rule := range chartRules {
		if !rule.match(columns) {
			continue
		}

		return types.Chart{
			Kind:   rule.kind,
			Index:  columns[0],
			Values: append([]string(nil), columns[1:]...),
		}
	}

	return types.Chart{Kind: types.ChartNone}
}
