package http

import (
	"github.com/gin-gonic/gin"

	"personal-agent/internal/model"
)

// processRouteReq binds and validates the route request body.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRunReq binds and validates the run request body.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// scopeFrom derives the caller scope from request headers. Anonymous
// callers share one session.
func scopeFrom(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:    c.GetHeader("X-User-ID"),
		SessionID: c.GetHeader("X-Session-ID"),
	}
	if sc.UserID == "" {
		sc.UserID = "anonymous"
	}
	return sc
}
