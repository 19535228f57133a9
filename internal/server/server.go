package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"foodshare/internal/db"
	"foodshare/internal/report"
	"foodshare/internal/store"
	"foodshare/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = newDecoder()

func newDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		if len(vals) == 0 || vals[0] == "" {
			return types.Date{}, nil
		}
		return types.ParseDate(vals[0])
	}, types.Date{})
	return d
}

type Service struct {
	logger *logrus.Logger
	config *types.Config

	provider  *db.Provider
	listings  *store.ListingRepository
	directory *store.DirectoryRepository
	reports   *report.Loader

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	provider *db.Provider,
	listings *store.ListingRepository,
	directory *store.DirectoryRepository,
	reports *report.Loader,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:    logger,
		config:    config,
		provider:  provider,
		listings:  listings,
		directory: directory,
		reports:   reports,
		handler:   mux,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/listings", s.handleListings, http.MethodGet)
	r.HandleFunc("/api/listings", s.handleCreateListing, http.MethodPost)
	r.HandleFunc("/api/listings/options", s.handleListingOptions, http.MethodGet)
	r.HandleFunc("/api/listings/manage", s.handleManageListings, http.MethodGet)
	r.HandleFunc("/api/listings/ids", s.handleListingIDs, http.MethodGet)
	r.HandleFunc("/api/listings/:id|^[0-9]+$", s.handleListing, http.MethodGet)
	r.HandleFunc("/api/listings/:id|^[0-9]+$", s.handleUpdateListing, http.MethodPut)
	r.HandleFunc("/api/listings/:id|^[0-9]+$", s.handleDeleteListing, http.MethodDelete)

	r.HandleFunc("/api/directory/cities", s.handleCities, http.MethodGet)
	r.HandleFunc("/api/directory/city/:city", s.handleDirectory, http.MethodGet)

	r.HandleFunc("/api/reports", s.handleReportDefinitions, http.MethodGet)
	r.HandleFunc("/api/reports/:slug", s.handleReport, http.MethodGet)
}
