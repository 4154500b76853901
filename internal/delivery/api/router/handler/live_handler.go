package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LiveFeed attaches an authorised request to the activation feed.
type LiveFeed interface {
	ServeHTTP(w http.ResponseWriter, r *http.Request) error
}

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Feed LiveFeed
}

// LiveHandler upgrades admin dashboards to the WebSocket activation feed.
type LiveHandler struct {
	feed LiveFeed
}

// NewLiveHandler is the constructor for LiveHandler.
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{feed: params.Feed}
}

// Subscribe upgrades the connection. Authorization has already run.
func (h *LiveHandler) Subscribe(c echo.Context) error {
	// After a successful upgrade the response is hijacked; nothing more may be written.
	return h.feed.ServeHTTP(c.Response(), c.Request())
}
