package sms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 10 * time.Second

// Sender sends text messages
type Sender interface {
	Send(ctx context.Context, phone, message string) error
	Enabled() bool
}

// GatewayClient posts messages to an HTTP SMS gateway
type GatewayClient struct {
	apiURL   string
	apiKey   string
	senderID string
	enabled  bool
}

// NewGatewayClient creates a gateway client. It is disabled when either the
// URL or the key is empty.
func NewGatewayClient(apiURL, apiKey, senderID string) *GatewayClient {
	return &GatewayClient{
		apiURL:   strings.TrimRight(apiURL, "/"),
		apiKey:   apiKey,
		senderID: senderID,
		enabled:  apiURL != "" && apiKey != "",
	}
}

// Enabled checks if the gateway is configured
func (g *GatewayClient) Enabled() bool {
	return g.enabled
}

type sendRequest struct {
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// Send posts one message to the gateway
func (g *GatewayClient) Send(ctx context.Context, phone, message string) error {
	if !g.enabled {
		return fmt.Errorf("sms gateway is not configured")
	}

	agent := fiber.Post(g.apiURL + "/messages")
	agent.Set(fiber.HeaderAuthorization, "Bearer "+g.apiKey)
	agent.JSON(sendRequest{Sender: g.senderID, To: phone, Message: message})
	agent.Timeout(timeoutFrom(ctx))

	if err := agent.Parse(); err != nil {
		return fmt.Errorf("failed to prepare sms request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("failed to send sms: %w", errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return fmt.Errorf("sms gateway returned %d: %s", code, string(body))
	}
	return nil
}

// timeoutFrom maps a context deadline onto the agent timeout
func timeoutFrom(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			return remaining
		}
	}
	return defaultTimeout
}
