package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-agent/internal/assistant"
	"personal-agent/internal/model"
	"personal-agent/pkg/response"
)

// Route godoc
// @Summary     Inspect a routing decision
// @Description Extracts the intent snapshot from the text and returns the engine's decision without executing any tool.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Message text and optional entity overrides"
// @Success     200 {object} routeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Chat godoc
// @Summary     Answer one message
// @Description Routes the message to a tool, asks a clarifying question, or runs the agent loop, and returns the answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message text, optional overrides and turn limit"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Run godoc
// @Summary     Run the agent loop
// @Description Runs a full agent loop for the text and returns the complete ordered event record, including the terminal event.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body runReq true "Message text and optional turn limit"
// @Success     200 {object} runResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/runs [POST]
func (h *handler) Run(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRunReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var events []model.Event
	for ev := range h.uc.Run(ctx, scopeFrom(c), req.toInput()) {
		events = append(events, ev)
	}

	response.OK(c, h.newRunResp(events))
}

// respondError maps use-case errors onto the response envelope. Run
// failures still return 200 at the transport level on the chat surface;
// the terminal error event is the API-visible failure record.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyInput):
		response.Error(c, err, nil)
	case errors.Is(err, assistant.ErrToolExecution), errors.Is(err, assistant.ErrRunFailed):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
