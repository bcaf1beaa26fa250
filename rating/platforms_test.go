package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolduebtn/stock-rating-checker/models"
)

func TestPlatforms_TableIsComplete(t *testing.T) {
	all := Platforms()
	require.Len(t, all, 5)

	for _, p := range all {
		_, ok := RuleFor(p.Kind)
		assert.True(t, ok, "platform %s has no rule", p.ID)
	}
}

func TestPlatforms_ReturnsCopy(t *testing.T) {
	all := Platforms()
	all[0].Name = "changed"

	p, ok := Lookup(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", p.Name)
}

func TestProfileURL(t *testing.T) {
	testCases := []struct {
		id       models.PlatformID
		expected string
	}{
		{models.Zacks, "https://www.zacks.com/stock/quote/AAPL"},
		{models.TipRanks, "https://www.tipranks.com/stocks/aapl"},
		{models.Barchart, "https://www.barchart.com/stocks/quotes/aapl/overview"},
		{models.Stockopedia, "https://www.stockopedia.com/share-prices/aapl-NSQ:AAPL/"},
		{models.StockAnalysis, "https://stockanalysis.com/stocks/aapl/forecast/"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.id), func(t *testing.T) {
			p, ok := Lookup(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.expected, p.ProfileURL(" aApl "))
		})
	}
}

func TestDetail(t *testing.T) {
	zacks, _ := Lookup(models.Zacks)
	assert.Equal(t, "Rank: 2", zacks.Detail(models.PlatformResult{Score: "2"}))
	assert.Empty(t, zacks.Detail(models.PlatformResult{}))

	tipranks, _ := Lookup(models.TipRanks)
	assert.Equal(t, "Smart Score: 8/10", tipranks.Detail(models.PlatformResult{Score: "8"}))

	stockopedia, _ := Lookup(models.Stockopedia)
	assert.Equal(t, "StockRank: 91/100", stockopedia.Detail(models.PlatformResult{Score: "91"}))

	sa, _ := Lookup(models.StockAnalysis)
	assert.Equal(t, "Analysts: 26", sa.Detail(models.PlatformResult{AnalystCount: 26}))
	assert.Empty(t, sa.Detail(models.PlatformResult{}))
}
