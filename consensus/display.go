package consensus

import "github.com/coolduebtn/stock-rating-checker/models"

// Headline is how a verdict is presented on the page.
type Headline struct {
	Text  string `json:"text" msgpack:"text"`
	Class string `json:"class" msgpack:"class"`
}

var headlines = map[models.Verdict]Headline{
	models.BuyConsensus:  {Text: "BUY CONSENSUS", Class: "rating-strong-buy"},
	models.SellConsensus: {Text: "SELL CONSENSUS", Class: "rating-strong-sell"},
	models.HoldConsensus: {Text: "HOLD CONSENSUS", Class: "rating-hold"},
	models.Mixed:         {Text: "MIXED SIGNALS", Class: "rating-neutral"},
	models.NoData:        {Text: "NO DATA", Class: "rating-na"},
}

// Display returns the headline for a verdict label. Unknown labels fall
// back to the label text with the neutral class.
func Display(label models.Verdict) Headline {
	if h, ok := headlines[label]; ok {
		return h
	}
	return Headline{Text: string(label), Class: "rating-neutral"}
}
