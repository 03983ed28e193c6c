package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		setenv  map[string]string
		wantErr bool
	}{
		{
			name: "memory storage without kafka",
			setenv: map[string]string{
				"STORAGE_DRIVER": "memory",
				"KAFKA_ENABLED":  "false",
				"JWT_SECRET":     "0123456789abcdef",
			},
		},
		{
			name: "postgres without credentials",
			setenv: map[string]string{
				"STORAGE_DRIVER": "postgres",
				"KAFKA_ENABLED":  "false",
				"JWT_SECRET":     "0123456789abcdef",
			},
			wantErr: true,
		},
		{
			name: "postgres with credentials",
			setenv: map[string]string{
				"STORAGE_DRIVER":    "postgres",
				"POSTGRES_USER":     "orders",
				"POSTGRES_PASSWORD": "secret",
				"KAFKA_ENABLED":     "true",
				"JWT_SECRET":        "0123456789abcdef",
			},
		},
		{
			name: "short secret",
			setenv: map[string]string{
				"STORAGE_DRIVER": "memory",
				"KAFKA_ENABLED":  "false",
				"JWT_SECRET":     "short",
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			setenv: map[string]string{
				"STORAGE_DRIVER": "mongo",
				"KAFKA_ENABLED":  "false",
				"JWT_SECRET":     "0123456789abcdef",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.setenv {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 10, cfg.Orders.NumberAttempts)
	assert.False(t, cfg.Orders.SingleUseCoupons)
	assert.True(t, cfg.Auth.RequireVerifiedEmail)
	assert.Equal(t, "token", cfg.Auth.CookieName)
}
