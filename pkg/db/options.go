package db

import "time"

// Option -.
type Option func(*SQL)

// MaxPoolSize -.
func MaxPoolSize(size int) Option {
	return func(c *SQL) {
		if size > 0 {
			c.maxPoolSize = size
		}
	}
}

// ConnAttempts -.
func ConnAttempts(attempts int) Option {
	return func(c *SQL) {
		c.connAttempts = attempts
	}
}

// ConnTimeout -.
func ConnTimeout(timeout time.Duration) Option {
	return func(c *SQL) {
		c.connTimeout = timeout
	}
}

// EnableForeignKeys turns on sqlite foreign key enforcement.
func EnableForeignKeys(enabled bool) Option {
	return func(c *SQL) {
		c.enableForeignKeys = enabled
	}
}
