package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/coolduebtn/stock-rating-checker/templates"
)

// RouterConfig controls optional middleware.
type RouterConfig struct {
	SecureHeaders bool
	// RateLimitPerMinute caps lookups per client IP; zero disables it.
	RateLimitPerMinute int
}

// NewRouter builds the gin engine with templates, middleware and routes.
func NewRouter(h *Handler, cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery(), RequestID(), RequestLogger(h.log))
	if cfg.SecureHeaders {
		r.Use(SecureHeaders())
	}

	var limited []gin.HandlerFunc
	if cfg.RateLimitPerMinute > 0 {
		limited = append(limited, RateLimit(cfg.RateLimitPerMinute))
	}

	r.GET("/", h.Index)
	r.GET("/ratings", h.RatingsPage)
	r.GET("/health", h.Health)
	r.POST("/get_ratings", append(limited, h.PostRatings)...)

	api := r.Group("/api", limited...)
	{
		api.GET("/ratings/:ticker", h.GetRatings)
		api.POST("/consensus", h.EvaluatePayload)
	}

	return r, nil
}
