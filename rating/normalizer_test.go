package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolduebtn/stock-rating-checker/models"
)

func succeeded(platform models.PlatformID, rating string) models.PlatformResult {
	return models.PlatformResult{Platform: platform, Success: true, RatingText: rating}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "strong buy", Normalize("  Strong\t\n  BUY "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "hold", Normalize("HOLD"))
}

func TestClassify_RatingStyle(t *testing.T) {
	testCases := []struct {
		name     string
		rating   string
		expected models.Sentiment
	}{
		{"strong buy", "Strong Buy", models.Positive},
		{"buy", "Buy", models.Positive},
		{"hold", "Hold", models.Neutral},
		{"sell", "Sell", models.Negative},
		{"strong sell", "Strong Sell", models.Negative},
		{"not rated", "Not Rated", models.Neutral},
		{"extra whitespace", "  STRONG   BUY  ", models.Positive},
		{"empty", "", models.Neutral},
	}

	for _, platform := range []models.PlatformID{models.Zacks, models.Barchart, models.StockAnalysis} {
		for _, tc := range testCases {
			t.Run(string(platform)+"/"+tc.name, func(t *testing.T) {
				s, voted := Classify(succeeded(platform, tc.rating))
				require.True(t, voted)
				assert.Equal(t, tc.expected, s)
			})
		}
	}
}

func TestClassify_PositiveCheckedBeforeNegative(t *testing.T) {
	// "buy" matches before the unrelated "sell" fragment is considered.
	s, voted := Classify(succeeded(models.Zacks, "Buy (upgraded from Sell)"))
	require.True(t, voted)
	assert.Equal(t, models.Positive, s)

	s, _ = Classify(succeeded(models.StockAnalysis, "Strong Buy - sellers exhausted"))
	assert.Equal(t, models.Positive, s)
}

func TestClassify_OutperformStyle(t *testing.T) {
	testCases := []struct {
		rating   string
		expected models.Sentiment
	}{
		{"Outperform", models.Positive},
		{"Underperform", models.Negative},
		{"Neutral", models.Neutral},
		{"Buy", models.Neutral},
	}

	for _, tc := range testCases {
		t.Run(tc.rating, func(t *testing.T) {
			s, voted := Classify(succeeded(models.TipRanks, tc.rating))
			require.True(t, voted)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestClassify_CategoryStyleUsesCategoryText(t *testing.T) {
	testCases := []struct {
		category string
		expected models.Sentiment
	}{
		{"Excellent", models.Positive},
		{"Good", models.Positive},
		{"Poor", models.Negative},
		{"Neutral", models.Neutral},
		{"", models.Neutral},
	}

	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			r := models.PlatformResult{
				Platform:     models.Stockopedia,
				Success:      true,
				RatingText:   "Strong Sell",
				CategoryText: tc.category,
			}
			s, voted := Classify(r)
			require.True(t, voted)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestClassify_FailedResultDoesNotVote(t *testing.T) {
	r := models.PlatformResult{Platform: models.Zacks, Success: false, RatingText: "Strong Buy"}
	s, voted := Classify(r)
	assert.False(t, voted)
	assert.Empty(t, s)
}

func TestClassify_UnknownPlatformIsNeutral(t *testing.T) {
	s, voted := Classify(succeeded("stockstory", "Buy"))
	assert.True(t, voted)
	assert.Equal(t, models.Neutral, s)
}

func TestClassifyAll_KeepsOrderAndSkipsFailedVotes(t *testing.T) {
	results := []models.PlatformResult{
		succeeded(models.Zacks, "Strong Buy"),
		{Platform: models.TipRanks, Success: false, RatingText: "Outperform"},
		succeeded(models.Barchart, "Sell"),
	}

	classified := ClassifyAll(results)
	require.Len(t, classified, 3)
	assert.Equal(t, models.Zacks, classified[0].Result.Platform)
	assert.True(t, classified[0].Voted)
	assert.False(t, classified[1].Voted)
	assert.Equal(t, models.Negative, classified[2].Sentiment)

	assert.Equal(t, []models.Sentiment{models.Positive, models.Negative}, Votes(classified))
}

func TestStyleClass(t *testing.T) {
	assert.Equal(t, "rating-strong-buy", StyleClass("Strong Buy"))
	assert.Equal(t, "rating-hold", StyleClass(" HOLD "))
	assert.Equal(t, "rating-na", StyleClass(""))
}
