// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the module.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, a JSON file and a .env
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Form holds the session configuration: the identifiers of the form the
	// client loads and submits.
	Form Form `envPrefix:"FORM_"`

	// Adapter holds the backend address and transport settings used by the
	// client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds client runtime settings.
	Client Client `envPrefix:"CLIENT_"`

	// Storage holds the persistence settings of the reference backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the network settings of the reference backend.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the path of the .env file. Defaults to ".env"; a missing
	// file is not an error.
	DotEnvPath string `env:"DOTENV"`
}

// App contains token and version settings.
type App struct {
	// TokenSignKey is the HMAC secret of tenant tokens. An empty key
	// disables authentication on the backend.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to the iss claim of minted tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of minted tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the application version reported by the binaries.
	Version string `env:"VERSION"`
}

// Form identifies the form a client session works with.
type Form struct {
	TenantID  string `env:"TENANT_ID"`
	ProjectID string `env:"PROJECT_ID"`
	Name      string `env:"NAME"`
}

// Adapter contains the settings of the HTTP adapter towards the backend.
type Adapter struct {
	// HTTPAddress is the base URL of the backend. A bare host:port is
	// treated as http.
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is sent verbatim in the Authorization header when set.
	Token string `env:"API_TOKEN"`
}

// Client contains client runtime settings.
type Client struct {
	// AnswersFile switches the client to headless mode: answers are read
	// from this JSON file instead of the terminal UI.
	AnswersFile string `env:"ANSWERS_FILE"`
}

// Storage groups the backend persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// FormsFile is a YAML file with forms seeded at startup.
	FormsFile string `env:"FORMS_FILE"`

	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// URLs use pgx,
	// anything else is a SQLite path.
	DSN string `env:"DATABASE_URI"`
}

// Redis holds the registration event queue settings. Publishing is disabled
// when Address is empty.
type Redis struct {
	Address string `env:"ADDRESS"`
	List    string `env:"LIST"`
}

// Server contains the backend network settings.
type Server struct {
	HTTPAddress    string        `env:"ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MintToken is a tenant id; when set the backend prints a token for it
	// and exits. Flag only.
	MintToken string
}

// GetStructuredConfig builds the merged configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDotEnv().
		build()
}
