package http

import (
	"github.com/gin-gonic/gin"

	"personal-agent/internal/assistant"
	"personal-agent/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
	Chat(c *gin.Context)
	Run(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
