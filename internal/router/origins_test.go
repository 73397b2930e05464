package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowlist_Match(t *testing.T) {
	allowlist := NewAllowlist([]string{
		"https://foodcart.example",
		"http://localhost:5173",
		"https://*.vercel.app",
		"*.netlify.app",
		"capacitor://localhost",
		"  https://trailing.example/  ",
		"",
	})

	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{"exact match", "https://foodcart.example", true},
		{"exact match is case-insensitive", "https://FoodCart.Example", true},
		{"trailing slash on request origin", "https://foodcart.example/", true},
		{"trailing slash on configured entry", "https://trailing.example", true},
		{"localhost dev server", "http://localhost:5173", true},
		{"capacitor shell", "capacitor://localhost", true},
		{"wildcard subdomain", "https://preview-42.vercel.app", true},
		{"wildcard apex", "https://vercel.app", true},
		{"wildcard wrong protocol", "http://preview-42.vercel.app", false},
		{"schemeless wildcard accepts any protocol", "http://site.netlify.app", true},
		{"unlisted origin", "https://evil.example", false},
		{"unlisted port", "http://localhost:9999", false},
		{"suffix lookalike host", "https://notvercel.example", false},
		{"empty origin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, allowlist.Match(tt.origin), "origin %q", tt.origin)
		})
	}
}
