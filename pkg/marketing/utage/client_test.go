package utage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestServer(t *testing.T, status int, responseBody string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.auth = r.Header.Get("Authorization")
		recorded.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		APIKey:             "test-key",
		BaseURL:            baseURL,
		ScenarioIDProspect: "scenario-prospect",
		ScenarioIDCustomer: "scenario-customer",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_InvalidConfig(t *testing.T) {
	client, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, client)
}

func TestClient_RegisterMember(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusCreated, `{}`)
	client := newTestClient(t, server.URL)

	err := client.RegisterMember(context.Background(), RegisterMemberRequest{
		Email:      "taro@example.com",
		Name:       "山田太郎",
		ScenarioID: "scenario-explicit",
		Source:     "top_page",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/api/v1/members", recorded.path)
	assert.Equal(t, "Bearer test-key", recorded.auth)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorded.body, &payload))
	assert.Equal(t, "taro@example.com", payload["email"])
	assert.Equal(t, "scenario-explicit", payload["scenario_id"])
	assert.Equal(t, map[string]interface{}{"source": "top_page"}, payload["custom_fields"])
}

func TestClient_RegisterMember_ProspectFallback(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL)

	err := client.RegisterMember(context.Background(), RegisterMemberRequest{
		Email: "taro@example.com",
	})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorded.body, &payload))
	assert.Equal(t, "scenario-prospect", payload["scenario_id"])
}

func TestClient_RegisterMember_MissingAPIKey(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://utage.invalid"})
	require.NoError(t, err)

	err = client.RegisterMember(context.Background(), RegisterMemberRequest{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_RegisterMember_MissingScenarioID(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key", BaseURL: "https://utage.invalid"})
	require.NoError(t, err)

	err = client.RegisterMember(context.Background(), RegisterMemberRequest{Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrMissingScenarioID)
}

func TestClient_RegisterMember_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "Unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"code": 401, "message": "invalid api key"}`,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "Server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: ErrRequestFailed,
		},
		{
			name:    "Unprocessable",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code": 422, "message": "email already registered"}`,
			wantErr: ErrRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, tt.status, tt.body)
			client := newTestClient(t, server.URL)

			err := client.RegisterMember(context.Background(), RegisterMemberRequest{
				Email: "taro@example.com",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_RegisterMember_NetworkError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{}`)
	serverURL := server.URL
	server.Close()

	client := newTestClient(t, serverURL)

	err := client.RegisterMember(context.Background(), RegisterMemberRequest{
		Email: "taro@example.com",
	})
	assert.ErrorIs(t, err, ErrNetworkError)
}

func TestClient_UpdateCustomFields(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, server.URL)

	err := client.UpdateCustomFields(context.Background(), "taro@example.com", map[string]interface{}{
		"purchased_offer": "course-complete-guide",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, recorded.method)
	assert.Equal(t, "/api/v1/members/taro@example.com", recorded.path)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorded.body, &payload))
	assert.Equal(t, map[string]interface{}{"purchased_offer": "course-complete-guide"}, payload["custom_fields"])
}
