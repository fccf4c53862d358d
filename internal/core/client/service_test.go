package client_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/api/internal/core/booking"
	"github.com/planora/api/internal/core/client"
	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/seed"
)

func newTestService(t *testing.T) *client.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := seed.Demo()

	repo := client.NewRemoteRepository(nil, nil, log)
	repo.Seed(data.Clients, data.CommLogs)

	bookings := booking.NewRemoteRepository(nil, nil, log)
	bookings.Seed(data.Bookings)

	return client.NewService(repo, bookings, log)
}

/*
TestListClients verifies the free-text search over name and email.
*/
func TestListClients(t *testing.T) {
	service := newTestService(t)

	// No search returns the full snapshot in order.
	all := service.ListClients("")
	require.Len(t, all, 3)
	assert.Equal(t, "Sarah Johnson", all[0].Name)

	// Case-insensitive substring over the name.
	matched := service.ListClients("emily")
	require.Len(t, matched, 1)
	assert.Equal(t, "Emily Rodriguez", matched[0].Name)

	// The email field is searched too.
	matched = service.ListClients("michael.chen@")
	require.Len(t, matched, 1)
	assert.Equal(t, "Michael Chen", matched[0].Name)

	assert.Empty(t, service.ListClients("nobody"))
}

/*
TestGetClient verifies id resolution and the not-found path.
*/
func TestGetClient(t *testing.T) {
	service := newTestService(t)

	c, err := service.GetClient("1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", c.Name)

	_, err = service.GetClient("ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestGetDetail verifies the joined client view.
*/
func TestGetDetail(t *testing.T) {
	service := newTestService(t)

	detail, err := service.GetDetail("1")
	require.NoError(t, err)

	assert.Equal(t, "Sarah Johnson", detail.Client.Name)
	require.Len(t, detail.Logs, 1)
	assert.Equal(t, client.CommPhone, detail.Logs[0].Type)
	assert.Equal(t, "Discussed wedding venue options and budget", detail.Logs[0].Summary)
	assert.Empty(t, detail.Bookings)

	// Clients without history still resolve.
	detail, err = service.GetDetail("3")
	require.NoError(t, err)
	assert.Empty(t, detail.Logs)
}

/*
TestMutationsInDemoMode verifies that writes are rejected without a remote
data service.
*/
func TestMutationsInDemoMode(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateClient(ctx, client.InsertRow{Name: "New Client", Email: "new@email.com"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "SERVICE_UNAVAILABLE", ae.Code)
}

/*
TestRecordCommunication_Validation verifies input checks fire before any
remote call.
*/
func TestRecordCommunication_Validation(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.RecordCommunication(ctx, client.InsertLogRow{
		ClientID: "1",
		Date:     "not-a-date",
		Type:     "carrier_pigeon",
		Summary:  "",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 3)

	// A valid payload against an unknown client is unprocessable.
	_, err = service.RecordCommunication(ctx, client.InsertLogRow{
		ClientID: "ghost",
		Date:     "2024-02-01",
		Type:     "email",
		Summary:  "Followup",
	})
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}
