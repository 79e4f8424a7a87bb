// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrWrongPassword         = errors.New("incorrect password")

	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrBookingNotFound            = errors.New("booking not found")
	ErrBookingDoesNotBelongToUser = errors.New("booking does not belong to user")

	ErrDatabaseUnavailable = errors.New("database unavailable")
)
