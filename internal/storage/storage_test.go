package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub/internal/config"
	"estatehub/internal/storage"
)

func TestNew_DisabledReturnsNil(t *testing.T) {
	store, err := storage.New(context.Background(), &config.StorageConfig{})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNew_UnknownProvider(t *testing.T) {
	store, err := storage.New(context.Background(), &config.StorageConfig{Provider: "ftp"})
	assert.Error(t, err)
	assert.Nil(t, store)
}
