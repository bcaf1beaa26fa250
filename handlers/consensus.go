package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coolduebtn/stock-rating-checker/provider"
	"github.com/coolduebtn/stock-rating-checker/view"
)

const maxPayloadBytes = 1 << 20

// EvaluatePayload evaluates an already-fetched ratings document posted by
// the caller, without consulting the database.
func (h *Handler) EvaluatePayload(c *gin.Context) {
	v, ok := view.ForFormat(c.DefaultQuery("format", "json"))
	if !ok {
		view.JSONView{}.RenderError(c, http.StatusBadRequest, "Unsupported format")
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes)
	snapshot, err := provider.DecodePayload(body)
	if err != nil {
		h.renderError(c, v, err)
		return
	}

	svc := h.lookup.WithProvider(provider.Static{Snapshot: snapshot})
	report, err := svc.Lookup(c.Request.Context(), snapshot.Ticker)
	if err != nil {
		h.renderError(c, v, err)
		return
	}
	v.Render(c, http.StatusOK, report)
}
