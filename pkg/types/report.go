package types

type ReportDefinition struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
	File  string `json:"file"`
}

// Table is a loaded artifact: named columns and string cells, row-major.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
	ChartNone ChartKind = "none"
)

type Chart struct {
	Kind   ChartKind `json:"kind"`
	Index  string    `json:"index,omitempty"`
	Values []string  `json:"values,omitempty"`
}

type Report struct {
	ReportDefinition
	Table *Table `json:"table"`
	Chart Chart  `json:"chart"`
}
