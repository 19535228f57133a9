package report

import (
	"context"
	"fmt"

	"foodshare/pkg/types"

	"github.com/sirupsen/logrus"
)

// Loader resolves report names to artifacts and attaches a chart shape.
// Artifacts are read on every call.
type Loader struct {
	source Source
	logger *logrus.Logger
}

func NewLoader(source Source, logger *logrus.Logger) *Loader {
	return &Loader{source: source, logger: logger}
}

// Load accepts a report label or its slug. An unknown name yields
// types.ErrUnknownReport and a missing artifact types.ErrReportNotFound;
// both match types.ErrNotFound.
func (l *Loader) Load(ctx context.Context, name string) (*types.Report, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownReport, name)
	}

	body, err := l.source.Open(ctx, def.File)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	table, err := ReadTable(body)
	if err != nil {
		return nil, fmt.Errorf("failed to load report %q: %w", def.Label, err)
	}

	chart := InferChart(table.Columns)

	l.logger.WithFields(logrus.Fields{
		"report":  def.Slug,
		"columns": len(table.Columns),
		"rows":    len(table.Rows),
		"chart":   chart.Kind,
	}).Debug("report loaded")

	return &types.Report{
		ReportDefinition: def,
		Table:            table,
		Chart:            chart,
	}, nil
}
