// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "forms.db"}},
	})

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "go-form-runner", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "registrations", cfg.Storage.Redis.List)
	assert.NoError(t, cfg.validate())
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ServerConfig
		want error
	}{
		{
			name: "valid",
			cfg: ServerConfig{
				Server:  Server{HTTPAddress: "localhost:8080"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/forms"}},
			},
		},
		{
			name: "no dsn",
			cfg:  ServerConfig{Server: Server{HTTPAddress: "localhost:8080"}},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "no address",
			cfg:  ServerConfig{Storage: Storage{DB: DB{DSN: "forms.db"}}},
			want: ErrInvalidServerConfigs,
		},
		{
			name: "mint token without key",
			cfg:  ServerConfig{Server: Server{MintToken: "tenant"}},
			want: ErrInvalidAppConfigs,
		},
		{
			name: "mint token needs no storage",
			cfg: ServerConfig{
				App:    App{TokenSignKey: "key"},
				Server: Server{MintToken: "tenant"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
