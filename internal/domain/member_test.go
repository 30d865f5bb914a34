package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMemberStateDefaults(t *testing.T) {
	st := NewMemberState("Alice", RoleHost)
	assert.Equal(t, "Alice", st.Name)
	assert.Equal(t, RoleHost, st.Role)
	assert.True(t, st.VideoOn)
	assert.False(t, st.Muted)
	assert.False(t, st.HandRaised)
	assert.False(t, st.Sharing)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sid  string
		want string
	}{
		{"plain", "Alice", "sid-1234567890", "Alice"},
		{"trimmed", "  Bob  ", "sid-1234567890", "Bob"},
		{"empty falls back", "", "abcdefghijkl", "guest-abcdefgh"},
		{"whitespace falls back", " \t\n ", "abcdefghijkl", "guest-abcdefgh"},
		{"short sid", "", "ab", "guest-ab"},
		{"capped at 64 runes", strings.Repeat("x", 100), "sid", strings.Repeat("x", 64)},
		{"multibyte capped by rune", strings.Repeat("й", 100), "sid", strings.Repeat("й", 64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.raw, tt.sid))
		})
	}
}
