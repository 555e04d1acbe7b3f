// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultTokenIssuer   = "go-form-runner"
	defaultTokenDuration = 24 * time.Hour
	defaultRedisList     = "registrations"
)

// ServerConfig is the validated configuration view of the reference backend.
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetServerConfig loads the merged configuration, applies backend defaults
// and validates the result.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}
	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.Storage.Redis.List == "" {
		serverCfg.Storage.Redis.List = defaultRedisList
	}

	return serverCfg
}
