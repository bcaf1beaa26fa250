package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coolduebtn/stock-rating-checker/models"
	"github.com/coolduebtn/stock-rating-checker/rating"
)

// looseString accepts a JSON string, number or bool. Scrapers report values
// like rank as either 3 or "3" and use "N/A" for missing numbers. Objects and
// arrays are treated as absent, so a malformed rating votes neutral.
type looseString string

func (l *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = looseString(strings.TrimSpace(s))
		return nil
	}
	if b[0] == '{' || b[0] == '[' {
		*l = ""
		return nil
	}
	*l = looseString(b)
	return nil
}

type platformPayload struct {
	Success      bool        `json:"success"`
	Rating       looseString `json:"rating"`
	Category     looseString `json:"category"`
	Consensus    looseString `json:"consensus"`
	Rank         looseString `json:"rank"`
	Score        looseString `json:"score"`
	StockRank    looseString `json:"stockrank"`
	Status       looseString `json:"status"`
	AnalystCount looseString `json:"analyst_count"`
	PriceTarget  looseString `json:"price_target"`
}

type pricePayload struct {
	Success       bool        `json:"success"`
	StockName     looseString `json:"stock_name"`
	CurrentPrice  looseString `json:"current_price"`
	Change        looseString `json:"change"`
	ChangePercent looseString `json:"change_percent"`
}

// DecodePayload reads a ratings document in the scraper's format: a top-level
// "ticker", an optional "price" object and one object per platform keyed by
// platform id. Platforms absent from the document come back as failed results.
func DecodePayload(r io.Reader) (*models.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	snapshot := &models.Snapshot{}
	if raw, ok := doc["ticker"]; ok {
		var ticker looseString
		if err := json.Unmarshal(raw, &ticker); err != nil {
			return nil, fmt.Errorf("%w: ticker: %v", ErrInvalidPayload, err)
		}
		snapshot.Ticker = string(ticker)
	}

	if raw, ok := doc["price"]; ok {
		var p pricePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: price: %v", ErrInvalidPayload, err)
		}
		snapshot.Price = models.PriceSnapshot{
			Success:       p.Success,
			StockName:     string(p.StockName),
			CurrentPrice:  parseDecimal(string(p.CurrentPrice)),
			Change:        parseDecimal(string(p.Change)),
			ChangePercent: parseDecimal(string(p.ChangePercent)),
		}
	}

	found := make(map[models.PlatformID]models.PlatformResult)
	for _, platform := range rating.Platforms() {
		raw, ok := doc[string(platform.ID)]
		if !ok {
			continue
		}
		var p platformPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, platform.ID, err)
		}
		found[platform.ID] = p.result(platform)
	}
	snapshot.Platforms = complete(found)

	return snapshot, nil
}

func (p platformPayload) result(platform rating.Platform) models.PlatformResult {
	text := p.Rating
	if platform.Kind == rating.ConsensusStyle && p.Consensus != "" {
		text = p.Consensus
	}

	r := models.PlatformResult{
		Platform:     platform.ID,
		Success:      p.Success,
		RatingText:   string(text),
		CategoryText: string(p.Category),
		Score:        string(firstNonEmpty(p.Rank, p.Score, p.StockRank)),
		Status:       string(p.Status),
	}
	if n, err := strconv.Atoi(string(p.AnalystCount)); err == nil {
		r.AnalystCount = n
	}
	if f, err := strconv.ParseFloat(string(p.PriceTarget), 64); err == nil {
		r.PriceTarget = &f
	}
	return r
}

func firstNonEmpty(values ...looseString) looseString {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
