package utage

// RegisterMemberRequest represents a member registration
type RegisterMemberRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	ScenarioID string `json:"scenario_id"`
	// Source is recorded as a custom field (e.g. "top_page", "upsell")
	Source string `json:"-"`
}

// memberPayload is the wire shape of the members endpoint.
type memberPayload struct {
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	ScenarioID   string                 `json:"scenario_id"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// customFieldsPayload is the wire shape of the custom-field update endpoint.
type customFieldsPayload struct {
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// ErrorResponse is the error body UTAGE returns on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
