package vault

import (
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"

	"github.com/smart-parking/console/config"
)

func TestNewClient_WithInjectedClient(t *testing.T) {
	t.Parallel()

	mockVaultClient := &api.Client{}

	client, err := NewClient(nil, WithClient(mockVaultClient))

	assert.NoError(t, err)
	assert.Equal(t, mockVaultClient, client.client)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestNewClient_WithInjectedClientAndPath(t *testing.T) {
	t.Parallel()

	client, err := NewClient(nil, WithClient(&api.Client{}), WithPath("secret/data/custom"))

	assert.NoError(t, err)
	assert.Equal(t, "secret/data/custom", client.path)
}

func TestNewClient_ConfigWithPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Secrets{
		Address: "http://localhost:8200",
		Token:   "test-token",
		Path:    "secret/data/gateway",
	}

	client, err := NewClient(cfg)

	assert.NoError(t, err)
	assert.NotNil(t, client.client)
	assert.Equal(t, "test-token", client.client.Token())
	assert.Equal(t, "secret/data/gateway", client.path)
}

func TestWithPath_EmptyString(t *testing.T) {
	t.Parallel()

	client, err := NewClient(nil, WithClient(&api.Client{}), WithPath(""))

	assert.NoError(t, err)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, Enabled(config.Secrets{}))
	assert.False(t, Enabled(config.Secrets{Address: "http://vault:8200"}))
	assert.True(t, Enabled(config.Secrets{Address: "http://vault:8200", Token: "t"}))
}
