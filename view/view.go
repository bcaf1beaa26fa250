// Package view renders lookup reports. Handlers receive a View explicitly;
// nothing here knows how ratings are classified.
package view

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/coolduebtn/stock-rating-checker/lookup"
)

// View renders a report or an error for one request.
type View interface {
	Render(c *gin.Context, status int, report *lookup.Report)
	RenderError(c *gin.Context, status int, message string)
}

// HTMLView renders the ratings page. The engine must have the templates
// package loaded.
type HTMLView struct{}

func (HTMLView) Render(c *gin.Context, status int, report *lookup.Report) {
	c.HTML(status, "ratings.html", report)
}

func (HTMLView) RenderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"error": message})
}

type JSONView struct{}

func (JSONView) Render(c *gin.Context, status int, report *lookup.Report) {
	c.JSON(status, report)
}

func (JSONView) RenderError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

const MsgpackContentType = "application/x-msgpack"

// MsgpackView encodes reports with msgpack for compact API clients.
type MsgpackView struct{}

func (MsgpackView) Render(c *gin.Context, status int, report *lookup.Report) {
	writeMsgpack(c, status, report)
}

func (MsgpackView) RenderError(c *gin.Context, status int, message string) {
	writeMsgpack(c, status, map[string]string{"error": message})
}

func writeMsgpack(c *gin.Context, status int, v interface{}) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, MsgpackContentType, b)
}

// ForFormat picks the API view for a ?format= value.
func ForFormat(format string) (View, bool) {
	switch format {
	case "", "json":
		return JSONView{}, true
	case "msgpack":
		return MsgpackView{}, true
	case "html":
		return HTMLView{}, true
	}
	return nil, false
}
