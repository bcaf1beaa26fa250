package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolduebtn/stock-rating-checker/lookup"
	"github.com/coolduebtn/stock-rating-checker/view"
)

type ratingsRequest struct {
	Ticker string `json:"ticker"`
}

// Index serves the search form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// RatingsPage renders the ratings page for ?ticker=.
func (h *Handler) RatingsPage(c *gin.Context) {
	h.respond(c, view.HTMLView{}, c.Query("ticker"))
}

// GetRatings returns the report for :ticker as JSON or, with
// ?format=msgpack, msgpack.
func (h *Handler) GetRatings(c *gin.Context) {
	v, ok := view.ForFormat(c.DefaultQuery("format", "json"))
	if !ok {
		view.JSONView{}.RenderError(c, http.StatusBadRequest, "Unsupported format")
		return
	}
	h.respond(c, v, c.Param("ticker"))
}

// PostRatings accepts {"ticker": "..."} and returns the JSON report.
func (h *Handler) PostRatings(c *gin.Context) {
	var request ratingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		view.JSONView{}.RenderError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.respond(c, view.JSONView{}, request.Ticker)
}

func (h *Handler) respond(c *gin.Context, v view.View, ticker string) {
	report, err := h.lookup.Lookup(c.Request.Context(), ticker)
	if err != nil {
		h.renderError(c, v, err)
		return
	}
	v.Render(c, http.StatusOK, report)
}

// userMessage is the text shown to the user for a lookup error.
func userMessage(err error) string {
	switch {
	case errors.Is(err, lookup.ErrEmptyTicker):
		return "Please enter a ticker symbol"
	case errors.Is(err, lookup.ErrInvalidTicker):
		return "Invalid ticker symbol format"
	}
	return err.Error()
}

func (h *Handler) renderError(c *gin.Context, v view.View, err error) {
	status := lookup.MapHTTPStatus(err)
	message := userMessage(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Lookup failed")
		message = "An error occurred while loading ratings"
	}
	v.RenderError(c, status, message)
}
