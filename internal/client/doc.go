// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the car rental API.
//
// Each subcommand parses its own flags, performs one call through
// [adapter.RentalAPI] and prints the result to the configured writer.
// Structured results are printed as indented JSON; login prints the bare
// token so it can be captured into CAR_RENTAL_TOKEN.
package client
