// Package telegram is a thin client for the Bot API methods this service
// relays to: createInvoiceLink, answerPreCheckoutQuery and sendMessage.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vip102a/backend/internal/config"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.TelegramTimeout},
		baseURL:    cfg.TelegramAPIURL,
		token:      cfg.BotToken,
	}
}

// APIError is returned when the Bot API answered but reported ok=false.
// Raw keeps the unparsed response body for diagnostics.
type APIError struct {
	Method      string
	Description string
	Raw         json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %s", e.Method, e.Description)
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// LabeledPrice is one entry of an invoice price list. For Stars invoices
// the amount is the star count itself, there is no subunit.
type LabeledPrice struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

type InvoiceLinkParams struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Payload       string         `json:"payload"`
	ProviderToken string         `json:"provider_token"`
	Currency      string         `json:"currency"`
	Prices        []LabeledPrice `json:"prices"`
}

// CreateInvoiceLink creates a payment link for a Stars invoice.
func (c *Client) CreateInvoiceLink(ctx context.Context, params InvoiceLinkParams) (string, error) {
	result, err := c.call(ctx, "createInvoiceLink", params)
	if err != nil {
		return "", err
	}

	var link string
	if err := json.Unmarshal(result, &link); err != nil {
		return "", fmt.Errorf("decode invoice link: %w", err)
	}
	return link, nil
}

// AnswerPreCheckoutQuery accepts a pending pre-checkout query. Telegram
// expects this within its own timeout, so callers should not delay.
func (c *Client) AnswerPreCheckoutQuery(ctx context.Context, queryID string) error {
	payload := map[string]any{
		"pre_checkout_query_id": queryID,
		"ok":                    true,
	}
	_, err := c.call(ctx, "answerPreCheckoutQuery", payload)
	return err
}

// SendMessage sends a plain text message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	_, err := c.call(ctx, "sendMessage", payload)
	return err
}

func (c *Client) call(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}

	slog.Info("telegram api response",
		"method", method,
		"status", resp.StatusCode,
		"body", string(raw),
	)

	// The Bot API reports failures in the JSON body with a non-2xx status.
	// A body that does not parse at all is a transport-level failure.
	var api apiResponse
	if err := json.Unmarshal(raw, &api); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
	}

	if !api.OK {
		desc := api.Description
		if desc == "" {
			desc = "unknown error"
		}
		return nil, &APIError{Method: method, Description: desc, Raw: raw}
	}

	return api.Result, nil
}
