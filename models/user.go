// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// Password always holds a bcrypt hash once the user has been persisted.
type User struct {
	// UserID is the unique identifier assigned by the store.
	UserID int64 `json:"userId"`

	// Username is the unique, non-empty login name.
	Username string `json:"username"`

	// Password stores the salted one-way hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair accepted by the signup and
// login endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
