// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

const maxPort = 65535

var (
	errInvalidPort = errors.New("port number must be between 1 and 65535")
	errInvalidHost = errors.New("host must be localhost or an IP address")
)

// NetAddress is a flag.Value holding a host:port listen address.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags defines the command-line flags of both binaries on the global
// flag set, parses os.Args and returns the result as a [StructuredConfig]
// layer. Unset flags leave zero values so that lower-priority layers can
// fill them.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var tenantID, projectID, formName string
	var apiToken string
	var answersFile string
	var formsFile string
	var redisAddress string
	var mintToken string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&adapterAddress, "server", "", "Backend base URL or host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&dotEnvPath, "env-file", "", "Path of the .env file")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tenantID, "tenant", "", "Tenant ID")
	flag.StringVar(&projectID, "project", "", "Project ID")
	flag.StringVar(&formName, "form", "", "Form name")
	flag.StringVar(&apiToken, "token", "", "Authorization token sent to the backend")
	flag.StringVar(&answersFile, "answers", "", "JSON answers file; enables headless mode")
	flag.StringVar(&formsFile, "seed", "", "YAML file with forms to seed")
	flag.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	flag.StringVar(&mintToken, "mint-token", "", "Print a token for the given tenant and exit")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Form: Form{
			TenantID:  tenantID,
			ProjectID: projectID,
			Name:      formName,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Token:          apiToken,
		},
		Client: Client{
			AnswersFile: answersFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			FormsFile: formsFile,
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MintToken:      mintToken,
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. An empty host listens on every interface;
// otherwise the host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > maxPort {
		return errInvalidPort
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errInvalidHost
	}

	a.Host = host
	a.Port = port
	return nil
}
