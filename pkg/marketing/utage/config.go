package utage

import "time"

// Config represents the configuration for the UTAGE client
type Config struct {
	// APIKey is the UTAGE bearer token. When empty, calls are skipped with
	// ErrMissingAPIKey so callers can degrade gracefully.
	APIKey string

	// BaseURL is the UTAGE API base URL
	BaseURL string

	// ScenarioIDProspect is the scenario for newsletter signups
	ScenarioIDProspect string

	// ScenarioIDCustomer is the scenario for paying customers
	ScenarioIDCustomer string

	// ScenarioIDDormant is the scenario for dormant-member reactivation
	ScenarioIDDormant string

	// Timeout bounds each API call. Defaults to 10 seconds.
	Timeout time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
