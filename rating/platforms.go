// Package rating holds the platform taxonomy and the normalizer that turns
// free-text platform ratings into a tri-state sentiment.
package rating

import (
	"fmt"
	"strings"

	"github.com/coolduebtn/stock-rating-checker/models"
)

// RuleKind selects the vocabulary used to classify a platform's rating.
type RuleKind string

const (
	RatingStyle     RuleKind = "rating"
	OutperformStyle RuleKind = "outperform"
	CategoryStyle   RuleKind = "category"
	ConsensusStyle  RuleKind = "consensus"
)

// Field is the PlatformResult text field a rule inspects.
type Field int

const (
	RatingField Field = iota
	CategoryField
)

// Rule is checked in order: any positive keyword, then any negative keyword,
// otherwise neutral.
type Rule struct {
	Field    Field
	Positive []string
	Negative []string
}

var rules = map[RuleKind]Rule{
	RatingStyle: {
		Field:    RatingField,
		Positive: []string{"strong buy", "buy"},
		Negative: []string{"sell"},
	},
	OutperformStyle: {
		Field:    RatingField,
		Positive: []string{"outperform"},
		Negative: []string{"underperform"},
	},
	CategoryStyle: {
		Field:    CategoryField,
		Positive: []string{"excellent", "good"},
		Negative: []string{"poor"},
	},
	ConsensusStyle: {
		Field:    RatingField,
		Positive: []string{"strong buy", "buy"},
		Negative: []string{"sell"},
	},
}

// Platform is one row of the fixed platform table.
type Platform struct {
	ID   models.PlatformID
	Name string
	Kind RuleKind
	// URLTemplate uses {T} for the upper-case ticker and {t} for lower case.
	URLTemplate string
	// ScoreFormat renders PlatformResult.Score for display; empty when the
	// platform reports an analyst count instead.
	ScoreFormat string
}

var platforms = []Platform{
	{
		ID:          models.Zacks,
		Name:        "Zacks",
		Kind:        RatingStyle,
		URLTemplate: "https://www.zacks.com/stock/quote/{T}",
		ScoreFormat: "Rank: %s",
	},
	{
		ID:          models.TipRanks,
		Name:        "TipRanks",
		Kind:        OutperformStyle,
		URLTemplate: "https://www.tipranks.com/stocks/{t}",
		ScoreFormat: "Smart Score: %s/10",
	},
	{
		ID:          models.Barchart,
		Name:        "Barchart",
		Kind:        RatingStyle,
		URLTemplate: "https://www.barchart.com/stocks/quotes/{t}/overview",
		ScoreFormat: "Score: %s",
	},
	{
		ID:          models.Stockopedia,
		Name:        "Stockopedia",
		Kind:        CategoryStyle,
		URLTemplate: "https://www.stockopedia.com/share-prices/{t}-NSQ:{T}/",
		ScoreFormat: "StockRank: %s/100",
	},
	{
		ID:          models.StockAnalysis,
		Name:        "Stock Analysis",
		Kind:        ConsensusStyle,
		URLTemplate: "https://stockanalysis.com/stocks/{t}/forecast/",
	},
}

var byID = func() map[models.PlatformID]Platform {
	m := make(map[models.PlatformID]Platform, len(platforms))
	for _, p := range platforms {
		m[p.ID] = p
	}
	return m
}()

// Platforms returns the supported platforms in display order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// Lookup returns the table row for id.
func Lookup(id models.PlatformID) (Platform, bool) {
	p, ok := byID[id]
	return p, ok
}

// RuleFor returns the classification rule of a platform kind.
func RuleFor(kind RuleKind) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

// ProfileURL builds the platform's public page for ticker.
func (p Platform) ProfileURL(ticker string) string {
	ticker = strings.TrimSpace(ticker)
	return strings.NewReplacer(
		"{T}", strings.ToUpper(ticker),
		"{t}", strings.ToLower(ticker),
	).Replace(p.URLTemplate)
}

// Detail is the secondary line shown under a platform's rating, such as
// "Rank: 2" or "Analysts: 26". It is empty when there is nothing to show.
func (p Platform) Detail(r models.PlatformResult) string {
	if p.ScoreFormat == "" {
		if r.AnalystCount > 0 {
			return fmt.Sprintf("Analysts: %d", r.AnalystCount)
		}
		return ""
	}
	if r.Score == "" {
		return ""
	}
	return fmt.Sprintf(p.ScoreFormat, r.Score)
}
