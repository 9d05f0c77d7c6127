package telegram

import (
	"github.com/gin-gonic/gin"

	"personal-agent/internal/assistant"
	pkgLog "personal-agent/pkg/log"
	pkgTelegram "personal-agent/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
