package service

import (
	"context"
	"testing"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientService(t *testing.T) ClientService {
	t.Helper()
	return NewClientService(repository.NewClientRepository(newTestDB(t)))
}

func TestClientCRUD(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	id, err := svc.CreateClient(ctx, SaveClientRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		City:      "Oakland",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	client, err := svc.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Grace", client.FirstName)
	assert.Equal(t, "Oakland", client.City)

	rows, err := svc.UpdateClient(ctx, id, SaveClientRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "hopper@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	client, err = svc.GetClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hopper@example.com", client.Email)
	// A full-record update clears fields the caller omitted.
	assert.Empty(t, client.City)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	rows, err = svc.DeleteClient(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = svc.GetClient(ctx, id)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientNotFound(t *testing.T) {
	svc := newClientService(t)
	ctx := context.Background()

	_, err := svc.GetClient(ctx, 123)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.UpdateClient(ctx, 123, SaveClientRequest{FirstName: "Nobody"})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.DeleteClient(ctx, 123)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
