package lookup

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coolduebtn/stock-rating-checker/consensus"
	"github.com/coolduebtn/stock-rating-checker/models"
	"github.com/coolduebtn/stock-rating-checker/rating"
)

// Report is what a view renders for one ticker lookup.
type Report struct {
	ID          string                  `json:"id" msgpack:"id"`
	Ticker      string                  `json:"ticker" msgpack:"ticker"`
	DisplayName string                  `json:"display_name" msgpack:"display_name"`
	Timestamp   string                  `json:"timestamp" msgpack:"timestamp"`
	Price       PriceView               `json:"price" msgpack:"price"`
	Platforms   []PlatformView          `json:"platforms" msgpack:"platforms"`
	Consensus   models.ConsensusVerdict `json:"consensus" msgpack:"consensus"`
	Headline    consensus.Headline      `json:"headline" msgpack:"headline"`
}

// PlatformView is one platform card.
type PlatformView struct {
	Platform  models.PlatformID `json:"platform" msgpack:"platform"`
	Name      string            `json:"name" msgpack:"name"`
	Success   bool              `json:"success" msgpack:"success"`
	Label     string            `json:"label" msgpack:"label"`
	Detail    string            `json:"detail,omitempty" msgpack:"detail,omitempty"`
	Status    string            `json:"status,omitempty" msgpack:"status,omitempty"`
	Sentiment models.Sentiment  `json:"sentiment,omitempty" msgpack:"sentiment,omitempty"`
	Voted     bool              `json:"voted" msgpack:"voted"`
	Class     string            `json:"class" msgpack:"class"`
	URL       string            `json:"url" msgpack:"url"`
}

// PriceView holds the quote and analyst price target as display strings.
type PriceView struct {
	Available         bool   `json:"available" msgpack:"available"`
	Current           string `json:"current,omitempty" msgpack:"current,omitempty"`
	Change            string `json:"change,omitempty" msgpack:"change,omitempty"`
	ChangePercent     string `json:"change_percent,omitempty" msgpack:"change_percent,omitempty"`
	Rising            bool   `json:"rising" msgpack:"rising"`
	Target            string `json:"target,omitempty" msgpack:"target,omitempty"`
	Difference        string `json:"difference,omitempty" msgpack:"difference,omitempty"`
	DifferencePercent string `json:"difference_percent,omitempty" msgpack:"difference_percent,omitempty"`
	Upside            bool   `json:"upside" msgpack:"upside"`
}

func buildReport(snapshot *models.Snapshot, classified []rating.Classified, verdict models.ConsensusVerdict, now time.Time) *Report {
	r := &Report{
		ID:          uuid.NewString(),
		Ticker:      snapshot.Ticker,
		DisplayName: displayName(snapshot),
		Timestamp:   now.Format("2006-01-02 15:04:05"),
		Price:       priceView(snapshot),
		Platforms:   make([]PlatformView, 0, len(classified)),
		Consensus:   verdict,
		Headline:    consensus.Display(verdict.Label),
	}
	for _, c := range classified {
		r.Platforms = append(r.Platforms, platformView(snapshot.Ticker, c))
	}
	return r
}

func displayName(s *models.Snapshot) string {
	name := s.Price.StockName
	if name == "" || name == s.Ticker {
		return s.Ticker
	}
	return name + " (" + s.Ticker + ")"
}

func platformView(ticker string, c rating.Classified) PlatformView {
	res := c.Result
	v := PlatformView{
		Platform:  res.Platform,
		Name:      string(res.Platform),
		Success:   res.Success,
		Label:     res.RatingText,
		Status:    res.Status,
		Sentiment: c.Sentiment,
		Voted:     c.Voted,
	}

	if p, ok := rating.Lookup(res.Platform); ok {
		v.Name = p.Name
		v.URL = p.ProfileURL(ticker)
		v.Detail = p.Detail(res)
		if rule, ok := rating.RuleFor(p.Kind); ok && rule.Field == rating.CategoryField {
			v.Label = res.CategoryText
		}
	}
	if v.Label == "" {
		v.Label = "N/A"
	}
	v.Class = rating.StyleClass(v.Label)
	return v
}

var hundred = decimal.NewFromInt(100)

func priceView(s *models.Snapshot) PriceView {
	p := s.Price
	if !p.HasPrice() {
		return PriceView{}
	}

	current := p.CurrentPrice.Decimal
	v := PriceView{
		Available: true,
		Current:   current.StringFixed(2),
		Rising:    !p.Change.Valid || !p.Change.Decimal.IsNegative(),
	}
	if p.Change.Valid {
		v.Change = signed(p.Change.Decimal)
	}
	if p.ChangePercent.Valid {
		v.ChangePercent = signed(p.ChangePercent.Decimal)
	}

	target, ok := priceTarget(s.Platforms)
	if !ok {
		return v
	}
	v.Target = target.StringFixed(2)
	if current.IsZero() {
		return v
	}
	diff := target.Sub(current)
	v.Difference = signed(diff)
	v.DifferencePercent = signed(diff.Div(current).Mul(hundred))
	v.Upside = !diff.IsNegative()
	return v
}

func priceTarget(results []models.PlatformResult) (decimal.Decimal, bool) {
	for _, r := range results {
		if r.Platform == models.StockAnalysis && r.Success && r.PriceTarget != nil {
			return decimal.NewFromFloat(*r.PriceTarget), true
		}
	}
	return decimal.Decimal{}, false
}

func signed(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if !d.IsNegative() {
		return "+" + s
	}
	return s
}
