package models

import "time"

// PlatformRecord is a row written by the scraper job, one per platform fetch.
type PlatformRecord struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Ticker       string     `json:"ticker" gorm:"index"`
	Platform     PlatformID `json:"platform" gorm:"index"`
	Success      bool       `json:"success"`
	Rating       string     `json:"rating"`
	Category     string     `json:"category"`
	Score        string     `json:"score"`
	Status       string     `json:"status"`
	AnalystCount int        `json:"analyst_count"`
	PriceTarget  *float64   `json:"price_target"`
	FetchedAt    time.Time  `json:"fetched_at" gorm:"index"`
}

// PriceRecord is the scraper's quote for a ticker. Prices are kept as
// decimal strings; an empty string means not available.
type PriceRecord struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Ticker        string    `json:"ticker" gorm:"index"`
	Success       bool      `json:"success"`
	StockName     string    `json:"stock_name"`
	CurrentPrice  string    `json:"current_price"`
	Change        string    `json:"change"`
	ChangePercent string    `json:"change_percent"`
	FetchedAt     time.Time `json:"fetched_at" gorm:"index"`
}

// Result converts the stored row into the value the rating engine consumes.
func (r PlatformRecord) Result() PlatformResult {
	return PlatformResult{
		Platform:     r.Platform,
		Success:      r.Success,
		RatingText:   r.Rating,
		CategoryText: r.Category,
		Score:        r.Score,
		Status:       r.Status,
		AnalystCount: r.AnalystCount,
		PriceTarget:  r.PriceTarget,
	}
}
