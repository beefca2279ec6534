package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/purchase_transactions/internal/adapters/fiscaldata"
	"github.com/SscSPs/purchase_transactions/internal/platform/config"
	"github.com/SscSPs/purchase_transactions/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRepositories_Memory(t *testing.T) {
	cfg := &config.Config{StoreDriver: config.StoreDriverMemory}
	rates := fiscaldata.NewClient(fiscaldata.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repos, cleanup, err := setupRepositories(context.Background(), cfg, rates, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer cleanup()

	assert.IsType(t, &memory.TransactionRepository{}, repos.TransactionRepo)
	assert.Same(t, rates, repos.ExchangeRateRepo)
}

func TestCorsConfig(t *testing.T) {
	all := corsConfig(&config.Config{CORSAllowedOrigins: []string{"*"}})
	assert.True(t, all.AllowAllOrigins)
	assert.NoError(t, all.Validate())

	some := corsConfig(&config.Config{CORSAllowedOrigins: []string{"https://shop.example"}})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://shop.example"}, some.AllowOrigins)
	assert.Contains(t, some.AllowHeaders, "Authorization")
	assert.NoError(t, some.Validate())
}
