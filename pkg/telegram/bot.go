package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Bot is a minimal Telegram Bot API client covering the surface this
// service needs: webhook registration and outbound messages.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a Bot client for the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the Bot API base URL, for tests.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(webhookURL string) error {
	return b.call("setWebhook", map[string]string{"url": webhookURL})
}

// SendMessage sends a plain text message to a chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithMode(chatID, text, "")
}

// SendMessageWithMode sends a message with an optional parse mode
// such as "Markdown".
func (b *Bot) SendMessageWithMode(chatID int64, text string, parseMode string) error {
	return b.call("sendMessage", SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
}

// call posts a JSON payload to a Bot API method and interprets the
// standard {ok, description} envelope.
func (b *Bot) call(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	resp, err := b.httpClient.Post(b.apiURL+"/"+method, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram %s: read response: %w", method, err)
	}

	var apiResp APIResponse
	if jsonErr := json.Unmarshal(raw, &apiResp); jsonErr == nil {
		if apiResp.OK {
			return nil
		}
		if apiResp.Description != "" {
			return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
		}
	}
	return fmt.Errorf("telegram %s failed: status %d: %s", method, resp.StatusCode, raw)
}
