package report

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodshare/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeArtifact(t *testing.T, dir, file, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func TestLoaderChartSelection(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "Providers_per_City.csv", "City,Total_Providers\nPune,3\nAgra,1\n")
	writeArtifact(t, dir, "Claims_per_Food_Item.csv", "Claim_Date,Food_Name,Claims\n2025-03-01,Rice,4\n")
	writeArtifact(t, dir, "Provider_Contacts_by_City.csv", "Name,City,Contact\nFresh Mart,Pune,555\n")

	loader := NewLoader(NewDirSource(dir), testLogger())
	ctx := context.Background()

	bar, err := loader.Load(ctx, "Providers per City")
	require.NoError(t, err)
	assert.Equal(t, types.ChartBar, bar.Chart.Kind)
	assert.Equal(t, "City", bar.Chart.Index)
	assert.Len(t, bar.Table.Rows, 2)
	assert.Equal(t, "providers-per-city", bar.Slug)

	line, err := loader.Load(ctx, "claims-per-food-item")
	require.NoError(t, err)
	assert.Equal(t, types.ChartLine, line.Chart.Kind)
	assert.Equal(t, "Claim_Date", line.Chart.Index)

	none, err := loader.Load(ctx, "Provider Contacts by City")
	require.NoError(t, err)
	assert.Equal(t, types.ChartNone, none.Chart.Kind)
	assert.Equal(t, []string{"Name", "City", "Contact"}, none.Table.Columns)
}

func TestLoaderMissingArtifact(t *testing.T) {
	loader := NewLoader(NewDirSource(t.TempDir()), testLogger())

	_, err := loader.Load(context.Background(), "Top City by Listings")
	assert.ErrorIs(t, err, types.ErrReportNotFound)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLoaderUnknownReport(t *testing.T) {
	loader := NewLoader(NewDirSource(t.TempDir()), testLogger())

	_, err := loader.Load(context.Background(), "Weather Forecast")
	assert.ErrorIs(t, err, types.ErrUnknownReport)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDefinitions(t *testing.T) {
	require.Len(t, Definitions, 15)

	seen := map[string]bool{}
	for _, def := range Definitions {
		assert.False(t, seen[def.Slug], "duplicate slug %s", def.Slug)
		seen[def.Slug] = true
		assert.True(t, strings.HasSuffix(def.File, ".csv"))
	}

	def, ok := Lookup("avg-quantity-claimed-per-receiver")
	require.True(t, ok)
	assert.Equal(t, "Avg Quantity Claimed per Receiver", def.Label)
	assert.Equal(t, "Avg_Quantity_Claimed_per_Receiver.csv", def.File)
}

type fakeObjects struct {
	objects map[string]string
	err     error
	keys    []string
}

func (f *fakeObjects) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(params.Key)
	f.keys = append(f.keys, key)

	if f.err != nil {
		return nil, f.err
	}

	body, ok := f.objects[key]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}

	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestS3Source(t *testing.T) {
	objects := &fakeObjects{objects: map[string]string{
		"reports/Receivers_per_City.csv": "City,Total_Receivers\nPune,2\n",
	}}
	loader := NewLoader(NewS3Source(objects, "food-reports", "reports"), testLogger())
	ctx := context.Background()

	loaded, err := loader.Load(ctx, "Receivers per City")
	require.NoError(t, err)
	assert.Equal(t, types.ChartBar, loaded.Chart.Kind)
	assert.Equal(t, [][]string{{"Pune", "2"}}, loaded.Table.Rows)

	_, err = loader.Load(ctx, "Total Food Available")
	assert.ErrorIs(t, err, types.ErrReportNotFound)

	assert.Equal(t, []string{"reports/Receivers_per_City.csv", "reports/Total_Food_Available.csv"}, objects.keys)
}

func TestS3SourceFailure(t *testing.T) {
	boom := errors.New("connection reset")
	source := NewS3Source(&fakeObjects{err: boom}, "food-reports", "")

	_, err := source.Open(context.Background(), "Total_Food_Available.csv")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, types.ErrNotFound)
}
