// Package provider supplies already-fetched platform ratings for a ticker.
// Nothing here contacts the rating platforms; the data comes from the scraper
// job's database or from a caller-supplied payload.
package provider

import (
	"context"
	"errors"

	"github.com/coolduebtn/stock-rating-checker/models"
	"github.com/coolduebtn/stock-rating-checker/rating"
)

var (
	ErrNoData         = errors.New("no rating data for ticker")
	ErrInvalidPayload = errors.New("invalid ratings payload")
)

// Provider returns one PlatformResult per supported platform plus the price
// snapshot. Success flags must reflect whether the fetch produced usable data.
type Provider interface {
	Lookup(ctx context.Context, ticker string) (*models.Snapshot, error)
}

// missing is the result reported for a platform the provider has nothing for.
func missing(id models.PlatformID) models.PlatformResult {
	return models.PlatformResult{Platform: id, Success: false, Status: "No data"}
}

// complete orders results by the platform table and fills gaps with failed
// results. Platforms outside the table are dropped.
func complete(found map[models.PlatformID]models.PlatformResult) []models.PlatformResult {
	all := rating.Platforms()
	out := make([]models.PlatformResult, 0, len(all))
	for _, p := range all {
		if r, ok := found[p.ID]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, missing(p.ID))
	}
	return out
}
