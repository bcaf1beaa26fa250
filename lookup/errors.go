package lookup

import (
	"errors"
	"net/http"

	"github.com/coolduebtn/stock-rating-checker/provider"
)

var (
	ErrEmptyTicker   = errors.New("ticker symbol is required")
	ErrInvalidTicker = errors.New("invalid ticker symbol format")
	ErrNotFound      = errors.New("no ratings found for ticker")
)

// MapHTTPStatus maps lookup errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyTicker),
		errors.Is(err, ErrInvalidTicker),
		errors.Is(err, provider.ErrInvalidPayload):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
