package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/coolduebtn/stock-rating-checker/lookup"
)

// Handler serves the ratings page and API.
type Handler struct {
	lookup  *lookup.Service
	log     zerolog.Logger
	version string
	now     func() time.Time
}

func New(svc *lookup.Service, version string, log zerolog.Logger) *Handler {
	return &Handler{
		lookup:  svc,
		log:     log.With().Str("component", "handlers").Logger(),
		version: version,
		now:     time.Now,
	}
}
