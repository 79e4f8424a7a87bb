// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-car-rental/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

// echoHandler answers with the request body it received.
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
})

func TestGZip(t *testing.T) {
	payload := `{"carName":"Civic","days":3,"rentPerDay":50}`

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		compressBody    bool
		wantGzipped     bool
	}{
		{
			name: "plain request and response",
		},
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			wantGzipped:    true,
		},
		{
			name:           "accept-encoding with several values",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			wantGzipped:    true,
		},
		{
			name:            "decompress gzipped request body",
			contentEncoding: "gzip",
			compressBody:    true,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			compressBody:    true,
			wantGzipped:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(payload)
			if tt.compressBody {
				body = gzipBytes(t, []byte(payload))
			}

			req := httptest.NewRequest(http.MethodPost, "/bookings/", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(echoHandler).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, payload, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, payload, rr.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, app.MsgInvalidInputs, body.Error)
}

func TestGZip_StatusIsKept(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("created"))
	})

	req := httptest.NewRequest(http.MethodPost, "/bookings/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "created", gunzip(t, rr.Body))
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat(`{"car_name":"Civic","days":3},`, 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/bookings/", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10, "compressed size should be much smaller than original")
}

func TestGZip_PoolReuse(t *testing.T) {
	middleware := withGZip(echoHandler)

	for i := 0; i < 10; i++ {
		data := strings.Repeat("booking ", i+1)

		req := httptest.NewRequest(http.MethodPost, "/bookings/", gzipBytes(t, []byte(data)))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, data, gunzip(t, rr.Body), "request %d: wrong body", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	middleware := withGZip(echoHandler)

	const n = 50
	done := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader("concurrent"))
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if err != nil {
				done <- ""
				return
			}
			data, _ := io.ReadAll(zr)
			done <- string(data)
		}()
	}

	for i := 0; i < n; i++ {
		assert.Equal(t, "concurrent", <-done)
	}
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled, "OnClose should be called")

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
