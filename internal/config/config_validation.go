// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Form.TenantID == "" || cfg.Form.ProjectID == "" || cfg.Form.Name == "" {
		return ErrInvalidFormConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.MintToken != "" {
		// minting needs only the sign key
		if cfg.App.TokenSignKey == "" {
			return ErrInvalidAppConfigs
		}
		return nil
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
