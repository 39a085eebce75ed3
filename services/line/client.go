package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yungwing/config"
)

const (
	replyEndpoint = "https://api.line.me/v2/bot/message/reply"
	pushEndpoint  = "https://api.line.me/v2/bot/message/push"
)

// Message is an outgoing LINE message. Only text messages are sent.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// TextMessage builds a text message.
func TextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

// Client talks to the LINE Messaging API.
type Client struct {
	AccessToken string
	HTTPClient  *http.Client
}

// NewClient builds a client using the configured channel access token.
func NewClient() *Client {
	return &Client{
		AccessToken: config.AppConfig.LineAccessToken,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode LINE payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build LINE request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("LINE request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("LINE API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// Reply answers a webhook event using its reply token. Reply tokens
// are single use and expire quickly.
func (c *Client) Reply(ctx context.Context, replyToken string, messages []Message) error {
	return c.post(ctx, replyEndpoint, map[string]interface{}{
		"replyToken": replyToken,
		"messages":   messages,
	})
}

// Push sends messages to a user outside of a webhook exchange, used
// for appointment reminders.
func (c *Client) Push(ctx context.Context, to string, messages []Message) error {
	return c.post(ctx, pushEndpoint, map[string]interface{}{
		"to":       to,
		"messages": messages,
	})
}
