// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{
			name:       "real ip wins",
			realIP:     "203.0.113.9",
			forwarded:  "198.51.100.1",
			remoteAddr: "10.0.0.1:1234",
			want:       "203.0.113.9",
		},
		{
			name:       "forwarded single",
			forwarded:  "198.51.100.1",
			remoteAddr: "10.0.0.1:1234",
			want:       "198.51.100.1",
		},
		{
			name:       "forwarded chain uses first entry",
			forwarded:  "198.51.100.1, 203.0.113.9, 10.0.0.2",
			remoteAddr: "10.0.0.1:1234",
			want:       "198.51.100.1",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "10.0.0.1:1234",
			want:       "10.0.0.1:1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalRateLimiterSeparatesClients(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)

	if !rl.cache.get("198.51.100.1").Allow() {
		t.Error("first request for a client should be allowed")
	}
	if rl.cache.get("198.51.100.1").Allow() {
		t.Error("second immediate request should be limited")
	}
	if !rl.cache.get("203.0.113.9").Allow() {
		t.Error("a different client should have its own budget")
	}
}
