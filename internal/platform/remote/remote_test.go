// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/remote"
)

type wireRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *remote.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return remote.NewClient(server.URL, "test-api-key", log)
}

/*
TestClient_List verifies query construction and payload decoding.
*/
func TestClient_List(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "/rest/v1/clients", request.URL.Path)
		assert.Equal(t, "test-api-key", request.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-api-key", request.Header.Get("Authorization"))

		query := request.URL.Query()
		assert.Equal(t, "*", query.Get("select"))
		assert.Equal(t, "name.asc", query.Get("order"))
		assert.Equal(t, "eq.1", query.Get("client_id"))

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode([]wireRow{{ID: "1", Name: "Sarah Johnson"}})
	})

	var rows []wireRow
	err := client.List(context.Background(), "clients", remote.ListOptions{
		OrderBy: "name",
		Equals:  map[string]string{"client_id": "1"},
	}, &rows)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sarah Johnson", rows[0].Name)
}

/*
TestClient_Insert verifies the representation round-trip on create.
*/
func TestClient_Insert(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "return=representation", request.Header.Get("Prefer"))

		var received wireRow
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received))
		assert.Equal(t, "Emily Rodriguez", received.Name)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode([]wireRow{{ID: "3", Name: received.Name}})
	})

	var created wireRow
	err := client.Insert(context.Background(), "clients", wireRow{Name: "Emily Rodriguez"}, &created)

	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
}

/*
TestClient_Update_NoMatch verifies that an empty representation maps to
NOT_FOUND.
*/
func TestClient_Update_NoMatch(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "eq.ghost", request.URL.Query().Get("id"))

		// The row contract answers 200 with an empty array when nothing matched.
		_, _ = writer.Write([]byte("[]"))
	})

	var updated wireRow
	err := client.Update(context.Background(), "clients", "ghost", wireRow{Name: "x"}, &updated)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestClient_Delete_Idempotent verifies that deleting an absent row succeeds.
*/
func TestClient_Delete_Idempotent(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodDelete, request.Method)
		writer.WriteHeader(http.StatusNoContent)
	})

	err := client.Delete(context.Background(), "clients", "ghost")
	assert.NoError(t, err)
}

/*
TestClient_ErrorClassification verifies the status → taxonomy mapping.
*/
func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedCode string
	}{
		{"not_found", http.StatusNotFound, "", "NOT_FOUND"},
		{"unauthorized", http.StatusUnauthorized, "", "UNAUTHORIZED"},
		{"forbidden", http.StatusForbidden, "", "FORBIDDEN"},
		{"conflict", http.StatusConflict, `{"message":"duplicate key"}`, "CONFLICT"},
		{"bad_request", http.StatusBadRequest, `{"message":"invalid input"}`, "UNPROCESSABLE"},
		{"server_error", http.StatusInternalServerError, "", "TRANSPORT_ERROR"},
		{"bad_gateway", http.StatusBadGateway, "", "TRANSPORT_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(tt.status)
				_, _ = writer.Write([]byte(tt.body))
			})

			var rows []wireRow
			err := client.List(context.Background(), "clients", remote.ListOptions{}, &rows)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.expectedCode, ae.Code)
		})
	}
}

/*
TestClient_NetworkFault verifies that connection failures map to
TRANSPORT_ERROR.
*/
func TestClient_NetworkFault(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // immediately unreachable

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := remote.NewClient(server.URL, "test-api-key", log)

	var rows []wireRow
	err := client.List(context.Background(), "clients", remote.ListOptions{}, &rows)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "TRANSPORT_ERROR", ae.Code)
}
