package models

import "github.com/shopspring/decimal"

// PriceSnapshot is the quote that accompanies a lookup. Prices are optional;
// a zero-valued NullDecimal means the provider had no figure.
type PriceSnapshot struct {
	Success       bool                `json:"success"`
	StockName     string              `json:"stock_name,omitempty"`
	CurrentPrice  decimal.NullDecimal `json:"current_price"`
	Change        decimal.NullDecimal `json:"change"`
	ChangePercent decimal.NullDecimal `json:"change_percent"`
}

// HasPrice reports whether a current price can be shown.
func (p PriceSnapshot) HasPrice() bool {
	return p.Success && p.CurrentPrice.Valid
}
