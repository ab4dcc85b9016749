package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrNotFound is returned when the postal API knows no office for a pincode
var ErrNotFound = errors.New("pincode not found")

const defaultTimeout = 10 * time.Second

// PostOffice is one delivery office serving a pincode
type PostOffice struct {
	Name       string `json:"name"`
	BranchType string `json:"branch_type"`
	District   string `json:"district"`
	State      string `json:"state"`
	Pincode    string `json:"pincode"`
}

// Lookup resolves a pincode to its post offices
type Lookup interface {
	Lookup(ctx context.Context, code string) ([]PostOffice, error)
}

// Client talks to the India Post pincode API (api.postalpincode.in)
type Client struct {
	baseURL string
}

// NewClient creates a new postal API client
func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

type apiPostOffice struct {
	Name       string `json:"Name"`
	BranchType string `json:"BranchType"`
	District   string `json:"District"`
	State      string `json:"State"`
	Pincode    string `json:"Pincode"`
}

type apiResult struct {
	Message    string          `json:"Message"`
	Status     string          `json:"Status"`
	PostOffice []apiPostOffice `json:"PostOffice"`
}

// Lookup calls GET {baseURL}/pincode/{code}
func (c *Client) Lookup(ctx context.Context, code string) ([]PostOffice, error) {
	agent := fiber.Get(c.baseURL + "/pincode/" + code)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	timeout := defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			timeout = remaining
		}
	}
	agent.Timeout(timeout)

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("failed to prepare pincode request: %w", err)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("pincode lookup failed: %w", errs[0])
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("pincode api returned %d", status)
	}

	var results []apiResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode pincode response: %w", err)
	}
	if len(results) == 0 || !strings.EqualFold(results[0].Status, "Success") || len(results[0].PostOffice) == 0 {
		return nil, ErrNotFound
	}

	offices := make([]PostOffice, 0, len(results[0].PostOffice))
	for _, po := range results[0].PostOffice {
		offices = append(offices, PostOffice{
			Name:       po.Name,
			BranchType: po.BranchType,
			District:   po.District,
			State:      po.State,
			Pincode:    po.Pincode,
		})
	}
	return offices, nil
}
