// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every bearer token issued by the
// service. Besides the registered claims it holds the identity of the user:
// the numeric user ID and the username.
type TokenClaims struct {
	// UserID is kept as json.Number so that tokens carrying a non-integer
	// value are detected during parsing instead of silently truncated.
	UserID json.Number `json:"userId"`

	Username string `json:"username"`

	jwt.RegisteredClaims
}

// GetUserID parses the userId claim as a base-10 int64.
func (c *TokenClaims) GetUserID() (int64, error) {
	userID, err := strconv.ParseInt(c.UserID.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting userId claim to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a signed JWT together with the identity it was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the userId claim.
	UserID int64 `json:"-"`

	// Username is the owner's username extracted from the username claim.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
