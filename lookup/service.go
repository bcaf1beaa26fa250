// Package lookup runs a ticker lookup end to end: provider snapshot, sentiment
// classification, consensus and the report handed to a view.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coolduebtn/stock-rating-checker/consensus"
	"github.com/coolduebtn/stock-rating-checker/models"
	"github.com/coolduebtn/stock-rating-checker/provider"
	"github.com/coolduebtn/stock-rating-checker/rating"
)

// Service holds no per-lookup state; concurrent lookups are independent.
type Service struct {
	provider provider.Provider
	engine   consensus.Engine
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(p provider.Provider, engine consensus.Engine, log zerolog.Logger) *Service {
	return &Service{
		provider: p,
		engine:   engine,
		log:      log.With().Str("component", "lookup").Logger(),
		now:      time.Now,
	}
}

// WithProvider returns a service that shares this one's engine and logger but
// reads snapshots from p.
func (s *Service) WithProvider(p provider.Provider) *Service {
	out := *s
	out.provider = p
	return &out
}

// Lookup validates ticker, asks the provider for its snapshot and evaluates it.
func (s *Service) Lookup(ctx context.Context, ticker string) (*Report, error) {
	ticker, err := ValidateTicker(ticker)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.provider.Lookup(ctx, ticker)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
		}
		return nil, fmt.Errorf("failed to load ratings for %s: %w", ticker, err)
	}
	snapshot.Ticker = ticker

	return s.Evaluate(snapshot)
}

// Evaluate classifies a snapshot the caller already holds and builds its
// report. The snapshot is not modified.
func (s *Service) Evaluate(snapshot *models.Snapshot) (*Report, error) {
	ticker, err := ValidateTicker(snapshot.Ticker)
	if err != nil {
		return nil, err
	}
	view := *snapshot
	view.Ticker = ticker

	classified := rating.ClassifyAll(view.Platforms)
	verdict := s.engine.Evaluate(rating.Votes(classified))
	report := buildReport(&view, classified, verdict, s.now())

	s.log.Info().
		Str("lookup_id", report.ID).
		Str("ticker", ticker).
		Str("verdict", string(verdict.Label)).
		Int("voting", verdict.VotingPlatformCount).
		Int("platforms", len(view.Platforms)).
		Msg("Consensus evaluated")

	return report, nil
}
