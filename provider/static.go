package provider

import (
	"context"
	"fmt"

	"github.com/coolduebtn/stock-rating-checker/models"
)

// Static serves a snapshot the caller already holds, such as one read with
// DecodePayload. Every lookup gets its own copy of the platform results.
type Static struct {
	Snapshot *models.Snapshot
}

func (s Static) Lookup(_ context.Context, ticker string) (*models.Snapshot, error) {
	if s.Snapshot == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoData, ticker)
	}
	out := *s.Snapshot
	out.Ticker = ticker
	out.Platforms = append([]models.PlatformResult(nil), s.Snapshot.Platforms...)
	return &out, nil
}
