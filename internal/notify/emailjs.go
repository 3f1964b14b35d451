package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"digipasal-be/internal/config"
	"digipasal-be/internal/logger"
	"digipasal-be/internal/utils"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.emailjs.com"

// Client talks to the transactional email SaaS. Every form submission
// triggers two template sends: an admin notification and a customer
// auto-reply. Delivery is fire-and-forget; nothing is persisted.
type Client struct {
	baseURL       string
	serviceID     string
	publicKey     string
	adminTemplate string
	replyTemplate string
	httpClient    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	if cfg.EmailServiceID == "" {
		logger.L().Warn("email service ID is empty")
	}

	return &Client{
		baseURL:       defaultBaseURL,
		serviceID:     cfg.EmailServiceID,
		publicKey:     cfg.EmailPublicKey,
		adminTemplate: cfg.EmailAdminTemplate,
		replyTemplate: cfg.EmailReplyTemplate,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithBaseURL points the client at a different endpoint, e.g. a test
// server.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// FormMessage carries the fields of a contact or checkout submission.
type FormMessage struct {
	Name          string
	Email         string
	Message       string
	PaymentMethod string
	Amount        *int64
	HasAttachment bool
}

// SendContact delivers the admin notification and the customer
// auto-reply for a contact/review form submission.
func (c *Client) SendContact(ctx context.Context, msg FormMessage) error {
	params := map[string]string{
		"from_name":  msg.Name,
		"from_email": msg.Email,
		"message":    msg.Message,
	}

	if err := c.send(ctx, c.adminTemplate, params); err != nil {
		return err
	}
	return c.send(ctx, c.replyTemplate, params)
}

// SendCheckout delivers both sends for a checkout submission, including
// the payment fields.
func (c *Client) SendCheckout(ctx context.Context, msg FormMessage) error {
	params := map[string]string{
		"from_name":      msg.Name,
		"from_email":     msg.Email,
		"message":        msg.Message,
		"payment_method": msg.PaymentMethod,
		"amount":         utils.FormatNPR(utils.PtrInt64(msg.Amount)),
		"has_attachment": fmt.Sprintf("%t", msg.HasAttachment),
	}

	if err := c.send(ctx, c.adminTemplate, params); err != nil {
		return err
	}
	return c.send(ctx, c.replyTemplate, params)
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("template", templateID),
		zap.String("service", c.serviceID),
	)

	body := map[string]interface{}{
		"service_id":      c.serviceID,
		"template_id":     templateID,
		"user_id":         c.publicKey,
		"template_params": params,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal email request", zap.Error(err))
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.baseURL+"/api/v1.0/email/send", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating email request", zap.Error(err))
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("email send failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error("email service rejected send",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		return fmt.Errorf("email send failed: status %d", resp.StatusCode)
	}

	log.Info("email sent")
	return nil
}
