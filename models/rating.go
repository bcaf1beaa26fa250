package models

// PlatformID identifies one of the supported rating platforms.
type PlatformID string

const (
	Zacks         PlatformID = "zacks"
	TipRanks      PlatformID = "tipranks"
	Barchart      PlatformID = "barchart"
	Stockopedia   PlatformID = "stockopedia"
	StockAnalysis PlatformID = "stockanalysis"
)

// PlatformResult is one platform's already-fetched rating for a ticker.
// Success false means the provider could not obtain usable data.
type PlatformResult struct {
	Platform     PlatformID `json:"platform" msgpack:"platform"`
	Success      bool       `json:"success" msgpack:"success"`
	RatingText   string     `json:"rating,omitempty" msgpack:"rating,omitempty"`
	CategoryText string     `json:"category,omitempty" msgpack:"category,omitempty"`
	Score        string     `json:"score,omitempty" msgpack:"score,omitempty"` // rank, score or StockRank; display only
	Status       string     `json:"status,omitempty" msgpack:"status,omitempty"`
	AnalystCount int        `json:"analyst_count,omitempty" msgpack:"analyst_count,omitempty"`
	PriceTarget  *float64   `json:"price_target,omitempty" msgpack:"price_target,omitempty"`
}

type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

type Verdict string

const (
	BuyConsensus  Verdict = "BUY_CONSENSUS"
	SellConsensus Verdict = "SELL_CONSENSUS"
	HoldConsensus Verdict = "HOLD_CONSENSUS"
	Mixed         Verdict = "MIXED"
	NoData        Verdict = "NO_DATA"
)

// ConsensusVerdict is the majority-vote outcome over all voting platforms.
type ConsensusVerdict struct {
	Label               Verdict `json:"label" msgpack:"label"`
	Description         string  `json:"description" msgpack:"description"`
	VotingPlatformCount int     `json:"voting_platform_count" msgpack:"voting_platform_count"`
	PositiveCount       int     `json:"positive_count" msgpack:"positive_count"`
	NegativeCount       int     `json:"negative_count" msgpack:"negative_count"`
	NeutralCount        int     `json:"neutral_count" msgpack:"neutral_count"`
}

// Snapshot is everything a provider knows about a ticker at lookup time.
type Snapshot struct {
	Ticker    string           `json:"ticker"`
	Price     PriceSnapshot    `json:"price"`
	Platforms []PlatformResult `json:"platforms"`
}
