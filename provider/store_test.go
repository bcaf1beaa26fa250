package provider

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/coolduebtn/stock-rating-checker/database"
	"github.com/coolduebtn/stock-rating-checker/models"
)

func setupStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := database.InitDB(database.Config{
		Path:        filepath.Join(t.TempDir(), "ratings.db"),
		AutoMigrate: true,
	}, zerolog.Nop())
	require.NoError(t, err)
	return NewStore(db, zerolog.Nop()), db
}

func TestStore_Lookup_LatestRowPerPlatform(t *testing.T) {
	store, db := setupStore(t)
	now := time.Now()
	target := 210.5

	rows := []models.PlatformRecord{
		{Ticker: "AAPL", Platform: models.Zacks, Success: true, Rating: "Sell", Score: "4", FetchedAt: now.Add(-2 * time.Hour)},
		{Ticker: "AAPL", Platform: models.Zacks, Success: true, Rating: "Strong Buy", Score: "1", FetchedAt: now},
		{Ticker: "AAPL", Platform: models.Stockopedia, Success: true, Category: "Good", Score: "80", FetchedAt: now},
		{Ticker: "AAPL", Platform: models.StockAnalysis, Success: true, Rating: "Buy", AnalystCount: 26, PriceTarget: &target, FetchedAt: now},
		{Ticker: "MSFT", Platform: models.Barchart, Success: true, Rating: "Hold", FetchedAt: now},
		{Ticker: "AAPL", Platform: "stockstory", Success: true, Rating: "Buy", FetchedAt: now},
	}
	require.NoError(t, db.Create(&rows).Error)

	snapshot, err := store.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, snapshot.Platforms, 5)

	results := byPlatform(snapshot)
	assert.Equal(t, "Strong Buy", results[models.Zacks].RatingText)
	assert.Equal(t, "1", results[models.Zacks].Score)
	assert.Equal(t, "Good", results[models.Stockopedia].CategoryText)
	assert.Equal(t, 26, results[models.StockAnalysis].AnalystCount)
	require.NotNil(t, results[models.StockAnalysis].PriceTarget)
	assert.Equal(t, 210.5, *results[models.StockAnalysis].PriceTarget)

	assert.False(t, results[models.Barchart].Success)
	assert.Equal(t, "No data", results[models.Barchart].Status)
	assert.False(t, results[models.TipRanks].Success)
	assert.NotContains(t, results, models.PlatformID("stockstory"))
}

func TestStore_Lookup_Price(t *testing.T) {
	store, db := setupStore(t)
	now := time.Now()

	prices := []models.PriceRecord{
		{Ticker: "AAPL", Success: true, StockName: "Apple Inc.", CurrentPrice: "220.00", FetchedAt: now.Add(-time.Hour)},
		{Ticker: "AAPL", Success: true, StockName: "Apple Inc.", CurrentPrice: "227.52", Change: "1.10", ChangePercent: "0.49", FetchedAt: now},
	}
	require.NoError(t, db.Create(&prices).Error)

	snapshot, err := store.Lookup(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.True(t, snapshot.Price.HasPrice())
	assert.Equal(t, "227.52", snapshot.Price.CurrentPrice.Decimal.StringFixed(2))
	assert.Equal(t, "Apple Inc.", snapshot.Price.StockName)
	for _, r := range snapshot.Platforms {
		assert.False(t, r.Success)
	}
}

func TestStore_Lookup_UnknownTicker(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Lookup(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestStore_Lookup_MissingTables(t *testing.T) {
	db, err := database.InitDB(database.Config{Path: filepath.Join(t.TempDir(), "empty.db")}, zerolog.Nop())
	require.NoError(t, err)

	_, err = NewStore(db, zerolog.Nop()).Lookup(context.Background(), "AAPL")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestStore_Lookup_SameTimestampPrefersLaterRow(t *testing.T) {
	store, db := setupStore(t)
	at := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		row := models.PlatformRecord{Ticker: "NVDA", Platform: models.Barchart, Success: true, Rating: "Hold", FetchedAt: at.Add(-time.Duration(i+1) * time.Hour)}
		require.NoError(t, db.Create(&row).Error)
	}
	require.NoError(t, db.Create(&models.PlatformRecord{Ticker: "NVDA", Platform: models.Barchart, Success: true, Rating: "Sell", FetchedAt: at}).Error)
	require.NoError(t, db.Create(&models.PlatformRecord{Ticker: "NVDA", Platform: models.Barchart, Success: true, Rating: "Buy", FetchedAt: at}).Error)

	snapshot, err := store.Lookup(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.Equal(t, "Buy", byPlatform(snapshot)[models.Barchart].RatingText)
}
