package vault

import (
	"context"
	"errors"
	"fmt"
)

var ErrSecretNotFound = errors.New("secret not found")

// GetKeyValue reads key from the "data" map of the secret at the client path.
func (c *Client) GetKeyValue(ctx context.Context, key string) (string, error) {
	data, err := c.read(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("key %s at %s: %w", key, c.path, ErrSecretNotFound)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key %s is not a string", key)
	}

	return strValue, nil
}

// SetKeyValue writes key, keeping the other keys stored at the same path.
func (c *Client) SetKeyValue(ctx context.Context, key, value string) error {
	data, err := c.read(ctx)
	if err != nil && !errors.Is(err, ErrSecretNotFound) {
		return err
	}

	if data == nil {
		data = make(map[string]interface{})
	}

	data[key] = value

	_, err = c.client.Logical().WriteWithContext(ctx, c.path, map[string]interface{}{
		"data": data,
	})

	return err
}

func (c *Client) read(ctx context.Context) (map[string]interface{}, error) {
	secret, err := c.client.Logical().ReadWithContext(ctx, c.path)
	if err != nil {
		return nil, err
	}

	if secret == nil {
		return nil, fmt.Errorf("%s: %w", c.path, ErrSecretNotFound)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected secret data format at %s", c.path)
	}

	return data, nil
}
