package lookup

import (
	"regexp"
	"strings"
)

var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z]{1,2})?$`)

// NormalizeTicker trims and upper-cases a user-entered symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateTicker normalizes ticker and checks it looks like a listed symbol,
// e.g. "AAPL" or "BRK.B".
func ValidateTicker(ticker string) (string, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return "", ErrEmptyTicker
	}
	if !tickerPattern.MatchString(ticker) {
		return "", ErrInvalidTicker
	}
	return ticker, nil
}
