package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/slack-go/slack"
)

// DefaultTimeout bounds one webhook delivery
const DefaultTimeout = 10 * time.Second

// Sender posts rendered payloads to a webhook endpoint
type Sender struct {
	httpClient *http.Client
	timeout    time.Duration
}

// SenderOption configures Sender
type SenderOption func(*Sender)

// WithHTTPClient sets the HTTP client used for delivery
func WithHTTPClient(client *http.Client) SenderOption {
	return func(s *Sender) {
		s.httpClient = client
	}
}

// WithTimeout sets the delivery timeout
func WithTimeout(timeout time.Duration) SenderOption {
	return func(s *Sender) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// NewSender creates a new Sender
func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send POSTs payload as JSON. Only HTTP 200 counts as delivered.
func (s *Sender) Send(ctx context.Context, url string, payload json.RawMessage) error {
	if strings.TrimSpace(url) == "" {
		return model.NewFailure(model.KindWebhookNotConfigured, "webhook URL is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return model.WrapFailure(err, model.KindWebhookFailed, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.WrapFailure(err, model.KindWebhookFailed, "failed to send webhook")
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close webhook response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return model.NewFailure(model.KindWebhookFailed, "webhook returned non-200 status",
			goerr.V(model.KeyStatus, resp.StatusCode),
			goerr.V(model.KeyDetails, string(body)))
	}
	return nil
}

// SendSlack delivers message through a Slack incoming webhook
func (s *Sender) SendSlack(ctx context.Context, url, message string) error {
	if strings.TrimSpace(url) == "" {
		return model.NewFailure(model.KindWebhookNotConfigured, "webhook URL is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg := &slack.WebhookMessage{
		Text: message,
		Blocks: &slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, DefaultTitle, false, false)),
				slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, message, false, false), nil, nil),
			},
		},
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, url, s.httpClient, msg); err != nil {
		return model.WrapFailure(err, model.KindWebhookFailed, "failed to send Slack webhook")
	}
	return nil
}
