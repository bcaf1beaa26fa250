// Package consensus reduces per-platform sentiments to a single majority-vote
// verdict.
package consensus

import (
	"fmt"

	"github.com/coolduebtn/stock-rating-checker/models"
)

// EmptyPolicy decides the verdict when no platform voted.
type EmptyPolicy int

const (
	// EmptyNoData reports NO_DATA when nothing voted.
	EmptyNoData EmptyPolicy = iota
	// EmptyBuy keeps the historical behaviour: with a majority of zero the
	// buy rule always matches, giving "0 of 0 platforms recommend buying".
	EmptyBuy
)

// ParseEmptyPolicy accepts "no_data" or "buy".
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch s {
	case "", "no_data":
		return EmptyNoData, nil
	case "buy":
		return EmptyBuy, nil
	}
	return EmptyNoData, fmt.Errorf("unknown empty consensus policy %q", s)
}

// Engine evaluates verdicts. The zero value uses EmptyNoData.
type Engine struct {
	Empty EmptyPolicy
}

// Majority is ceil(total/2).
func Majority(total int) int {
	return (total + 1) / 2
}

// Evaluate counts votes and applies the buy, sell, hold rules in that order;
// the first rule whose count reaches the majority wins.
func (e Engine) Evaluate(votes []models.Sentiment) models.ConsensusVerdict {
	v := models.ConsensusVerdict{VotingPlatformCount: len(votes)}
	for _, s := range votes {
		switch s {
		case models.Positive:
			v.PositiveCount++
		case models.Negative:
			v.NegativeCount++
		default:
			v.NeutralCount++
		}
	}

	total := v.VotingPlatformCount
	if total == 0 && e.Empty == EmptyNoData {
		v.Label = models.NoData
		v.Description = "No platforms returned a usable rating"
		return v
	}

	majority := Majority(total)
	switch {
	case v.PositiveCount >= majority:
		v.Label = models.BuyConsensus
		v.Description = fmt.Sprintf("%d of %d platforms recommend buying", v.PositiveCount, total)
	case v.NegativeCount >= majority:
		v.Label = models.SellConsensus
		v.Description = fmt.Sprintf("%d of %d platforms recommend selling", v.NegativeCount, total)
	case v.NeutralCount >= majority:
		v.Label = models.HoldConsensus
		v.Description = fmt.Sprintf("%d of %d platforms recommend holding", v.NeutralCount, total)
	default:
		v.Label = models.Mixed
		v.Description = "Platforms show conflicting recommendations"
	}
	return v
}
