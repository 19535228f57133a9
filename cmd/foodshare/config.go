package main

import (
	"context"
	"fmt"

	"foodshare/internal/db"
	"foodshare/internal/report"
	"foodshare/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func loadConfig(cCtx *cli.Context) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(cCtx.String("env-prefix"), c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	switch c.DatabaseDriver {
	case db.DriverSQLite, db.DriverPgx:
	default:
		return nil, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q", db.DriverSQLite, db.DriverPgx, c.DatabaseDriver)
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ListingsPageLimit == 0 {
		c.ListingsPageLimit = 50
	}

	return c, nil
}

func newLogger(c *types.Config, structured bool) (*logrus.Logger, error) {
	logger := logrus.New()
	if structured {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)

	return logger, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

// newReportSource reads artifacts from S3 when a bucket is configured and
// from the local reports directory otherwise.
func newReportSource(ctx context.Context, c *types.Config) (report.Source, error) {
	if c.ReportsBucket == "" {
		return report.NewDirSource(c.ReportsDir), nil
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	return report.NewS3Source(s3.NewFromConfig(awsConfig), c.ReportsBucket, c.ReportsPrefix), nil
}
