package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coolduebtn/stock-rating-checker/models"
	"github.com/coolduebtn/stock-rating-checker/rating"
)

// Store reads the latest scraper output for a ticker from the database.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewStore(db *gorm.DB, log zerolog.Logger) *Store {
	return &Store{
		db:  db,
		log: log.With().Str("component", "provider_store").Logger(),
	}
}

// Lookup returns the most recent row for each known platform. Platforms
// without a row come back as failed results; rows for other platforms are
// never read.
func (s *Store) Lookup(ctx context.Context, ticker string) (*models.Snapshot, error) {
	db := s.db.WithContext(ctx)

	found := make(map[models.PlatformID]models.PlatformResult)
	for _, platform := range rating.Platforms() {
		var rec models.PlatformRecord
		err := db.Where("ticker = ? AND platform = ?", ticker, platform.ID).
			Order("fetched_at DESC").
			Order("id DESC").
			First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s result for %s: %w", platform.ID, ticker, err)
		}
		found[platform.ID] = rec.Result()
	}

	var price models.PriceRecord
	hasPrice := true
	err := db.Where("ticker = ?", ticker).
		Order("fetched_at DESC").
		Order("id DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hasPrice = false
	} else if err != nil {
		return nil, fmt.Errorf("failed to load price for %s: %w", ticker, err)
	}

	if len(found) == 0 && !hasPrice {
		return nil, fmt.Errorf("%w: %s", ErrNoData, ticker)
	}

	snapshot := &models.Snapshot{
		Ticker:    ticker,
		Platforms: complete(found),
	}
	if hasPrice {
		snapshot.Price = priceFromRecord(price)
	}

	s.log.Debug().
		Str("ticker", ticker).
		Int("platforms", len(found)).
		Bool("price", hasPrice).
		Msg("Loaded snapshot")

	return snapshot, nil
}

func priceFromRecord(r models.PriceRecord) models.PriceSnapshot {
	return models.PriceSnapshot{
		Success:       r.Success,
		StockName:     r.StockName,
		CurrentPrice:  parseDecimal(r.CurrentPrice),
		Change:        parseDecimal(r.Change),
		ChangePercent: parseDecimal(r.ChangePercent),
	}
}

// parseDecimal treats anything unparseable, such as "N/A", as absent.
func parseDecimal(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
