package store

import (
	"context"
	"testing"

	"github.com/sangkips/billdesk-api/internal/config"
	"github.com/sangkips/billdesk-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemorySeeded(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: config.StoreBackendMemory, Seed: true}}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memory.Store{}, s)
	clients, err := s.Clients().GetAll(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, clients)
}

func TestOpenMemoryEmpty(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: config.StoreBackendMemory}}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)

	bills, err := s.Bills().GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: "sheets"}}

	_, err := Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported store backend")
}
