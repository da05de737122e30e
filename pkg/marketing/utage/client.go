package utage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/365take-collab/motefuku/pkg/logger"
)

const defaultTimeout = 10 * time.Second

// Client represents a UTAGE marketing API client
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new UTAGE client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// GetConfig returns the client configuration
func (c *Client) GetConfig() Config {
	return c.config
}

// RegisterMember registers an email address on a UTAGE scenario.
// When req.ScenarioID is empty the prospect scenario from the config is used.
func (c *Client) RegisterMember(ctx context.Context, req RegisterMemberRequest) error {
	if c.config.APIKey == "" {
		return ErrMissingAPIKey
	}

	scenarioID := req.ScenarioID
	if scenarioID == "" {
		scenarioID = c.config.ScenarioIDProspect
	}
	if scenarioID == "" {
		return ErrMissingScenarioID
	}

	payload := memberPayload{
		Email:      req.Email,
		Name:       req.Name,
		ScenarioID: scenarioID,
		CustomFields: map[string]interface{}{
			"source": req.Source,
		},
	}

	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/members", payload); err != nil {
		return fmt.Errorf("failed to register member: %w", err)
	}

	logger.Info("Registered member with UTAGE", map[string]interface{}{
		"email":       req.Email,
		"scenario_id": scenarioID,
	})
	return nil
}

// UpdateCustomFields updates the custom fields of an existing member.
func (c *Client) UpdateCustomFields(ctx context.Context, email string, fields map[string]interface{}) error {
	if c.config.APIKey == "" {
		return ErrMissingAPIKey
	}

	path := "/api/v1/members/" + url.PathEscape(email)
	if err := c.doRequest(ctx, http.MethodPatch, path, customFieldsPayload{CustomFields: fields}); err != nil {
		return fmt.Errorf("failed to update custom fields: %w", err)
	}

	logger.Info("Updated UTAGE custom fields", map[string]interface{}{
		"email": email,
	})
	return nil
}

// doRequest performs one authenticated call against the UTAGE API.
// 2xx is success; everything else maps onto the package sentinel errors.
func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	detail := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		detail = errResp.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: status %d: %s", ErrUnauthorized, resp.StatusCode, detail)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, detail)
	}
}
