package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidateProduction(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid production config", func(c *Config) {}, false},
		{"default JWT secret rejected", func(c *Config) {
			c.JWTSecret = "your-secret-key-change-in-production"
		}, true},
		{"short JWT secret rejected", func(c *Config) {
			c.JWTSecret = "short"
		}, true},
		{"default DB password rejected", func(c *Config) {
			c.DBPassword = "password"
		}, true},
		{"disabled SSL rejected", func(c *Config) {
			c.DBSSLMode = "disable"
		}, true},
		{"missing port rejected", func(c *Config) {
			c.Port = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:        "production",
				Port:       "8430",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				DBSSLMode:  "require",
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateDevelopmentIsLenient(t *testing.T) {
	c := &Config{
		Env:        "development",
		Port:       "8430",
		JWTSecret:  "dev-secret",
		DBPassword: "password",
		DBSSLMode:  "disable",
	}
	assert.NoError(t, c.Validate())
}
