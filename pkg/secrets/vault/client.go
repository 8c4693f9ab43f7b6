// Package vault stores gateway secrets, such as the JWT signing key, in a
// HashiCorp Vault KV v2 mount.
package vault

import (
	"github.com/hashicorp/vault/api"

	"github.com/smart-parking/console/config"
)

// DefaultSecretPath is used when no path is configured.
const DefaultSecretPath = "secret/data/parking"

// Client reads and writes string values under one KV v2 path.
type Client struct {
	client *api.Client
	path   string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client.
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// Enabled reports whether cfg points at a Vault server.
func Enabled(cfg config.Secrets) bool {
	return cfg.Address != "" && cfg.Token != ""
}

// NewClient builds a Client from cfg unless WithClient supplies one.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		if cfg != nil {
			vaultConfig.Address = cfg.Address
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		if cfg != nil {
			client.SetToken(cfg.Token)
		}

		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}
