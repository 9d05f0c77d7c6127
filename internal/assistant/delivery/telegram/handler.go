package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"personal-agent/internal/assistant"
	"personal-agent/internal/model"
	pkgResponse "personal-agent/pkg/response"
	pkgTelegram "personal-agent/pkg/telegram"
)

const (
	welcomeMessage = "👋 Hi! Send me a message and I'll route it to the right tool.\n\nThings I can do:\n• Summarize or search your notes and files\n• Check the weather\n• Draft emails\n• Create reminders\n\n_Example: \"remind me to file taxes by next Friday\"_"
	helpMessage    = "*How to use:*\n\nJust write what you need, for example:\n`what's the weather in Hanoi tomorrow`\n`summarize my notes about the offsite`\n`email Sam about the deadline`"
	failedMessage  = "Something went wrong while handling your request. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an acknowledgement within a few
// seconds and an agent run can take much longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled as soon
		// as the acknowledgement is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, failedMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, welcomeMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	}

	userID := msg.Chat.ID
	if msg.From != nil {
		userID = msg.From.ID
	}
	sc := model.Scope{
		UserID:    fmt.Sprintf("tg:%d", userID),
		SessionID: fmt.Sprintf("tg:%d", msg.Chat.ID),
	}

	out, err := h.uc.Chat(ctx, sc, assistant.ChatInput{Text: msg.Text})
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	reply := out.Answer
	if out.IsQuestion {
		reply = "❓ " + reply
	}
	return h.bot.SendMessage(msg.Chat.ID, reply)
}
