// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultFormName       = "Registration"
	defaultRequestTimeout = 15 * time.Second
)

// ClientApp holds application-level settings of the client.
type ClientApp struct {
	Version string
}

// ClientAdapter holds the settings of the HTTP adapter towards the backend.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientRuntime selects between the interactive and the headless runtime.
type ClientRuntime struct {
	AnswersFile string
}

// ClientConfig is the validated configuration view of the form client.
type ClientConfig struct {
	App     ClientApp
	Form    Form
	Adapter ClientAdapter
	Client  ClientRuntime
}

// GetClientConfig loads the merged configuration, applies client defaults
// and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Form: cfg.Form,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Client: ClientRuntime{
			AnswersFile: cfg.Client.AnswersFile,
		},
	}

	if clientCfg.Form.Name == "" {
		clientCfg.Form.Name = defaultFormName
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg
}
