package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/config"
)

const telegramAPI = "https://api.telegram.org"

type telegram struct {
	client *http.Client
	token  string
	chatID string
	apiURL string
}

func NewTelegram(cfg config.Telegram) *telegram {
	return &telegram{
		client: &http.Client{Timeout: 10 * time.Second},
		token:  cfg.BotToken,
		chatID: cfg.ChatID,
		apiURL: telegramAPI,
	}
}

func (t *telegram) Send(ctx context.Context, msg Message) error {
	form := url.Values{
		"chat_id":    {t.chatID},
		"text":       {msg.Text},
		"parse_mode": {"HTML"},
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return fmt.Errorf("telegram api returned %d: %s", res.StatusCode, body)
	}
	return nil
}
