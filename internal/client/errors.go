// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrMissingFlag    = errors.New("required flag missing")
	ErrNothingToEdit  = errors.New("nothing to edit")
	ErrNotLoggedIn    = errors.New("not logged in: run login or set CAR_RENTAL_TOKEN")
)
