// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

// Package sec verifies access tokens minted by the external identity provider.
//
// # Architecture
//
// Planora never issues credentials itself — registration, login, and password
// recovery live entirely in the hosted identity provider. This package only
// checks that a presented bearer token carries a valid signature from that
// provider, so handlers can trust the embedded identity without a network
// round-trip per request.
package sec

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside an identity-provider
// access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Email is the account email embedded by the identity provider.
	Email string `json:"email,omitempty"`
	// Role is the provider-assigned role ("authenticated", "service_role", ...).
	Role string `json:"role,omitempty"`
}

// UserID returns the subject claim, which the identity provider sets to the
// account's UUID.
func (c *AuthClaims) UserID() string { return c.Subject }

// TokenVerifier validates bearer tokens issued with a shared HMAC secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for HS256-signed provider tokens.
func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: token secret must not be empty")
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// VerifyToken parses and validates an access token string.
//
// It enforces the HS256 signing method and the standard time-based claims.
func (v *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("sec: token verification failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("sec: token is invalid")
	}

	return claims, nil
}
