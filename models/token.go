// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a tenant-scoped JWT.
//
// The "sub" claim carries the tenant id the bearer may fetch forms and
// submit registrations for.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// TenantID is the cached "sub" claim.
	TenantID string `json:"-"`
}

// GetTenantID extracts the tenant id from the "sub" claim of the parsed
// token.
func (t *Token) GetTenantID() (string, error) {
	if t.Token == nil {
		return "", errors.New("token is not parsed")
	}

	subject, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting tenant ID from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
