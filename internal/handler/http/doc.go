// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the car rental API.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, panic recovery, CORS, compression and bearer token
// authentication are handled here before requests are delegated to the
// service layer. Every response body is a JSON envelope: success responses
// carry "data", failures carry a fixed "error" message.
package http
