package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Store
	DatabaseDriver string `envconfig:"DATABASE_DRIVER" default:"sqlite"` // sqlite or pgx
	DatabaseURL    string `envconfig:"DATABASE_URL" default:"data.db"`

	// Precomputed report artifacts. When ReportsBucket is set the
	// artifacts are read from S3 under ReportsPrefix instead of ReportsDir.
	ReportsDir    string `envconfig:"REPORTS_DIR" default:"results"`
	ReportsBucket string `envconfig:"REPORTS_BUCKET"`
	ReportsPrefix string `envconfig:"REPORTS_PREFIX"`

	// Reject listings whose Provider_ID has no matching provider row
	ValidateProviderRef bool `envconfig:"VALIDATE_PROVIDER_REF" default:"false"`

	ListingsPageLimit uint64 `envconfig:"LISTINGS_PAGE_LIMIT" default:"50"`
}
