package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestApplicationParsedLinks(t *testing.T) {
	tests := []struct {
		name  string
		links *string
		want  []string
	}{
		{name: "nil", links: nil, want: nil},
		{name: "empty", links: strPtr(""), want: nil},
		{name: "list", links: strPtr(`["https://a.example", "https://b.example"]`), want: []string{"https://a.example", "https://b.example"}},
		{name: "malformed", links: strPtr(`{"a":`), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := &Application{Links: tt.links}
			assert.Equal(t, tt.want, application.ParsedLinks())
		})
	}
}

func TestApplicationHasAvatar(t *testing.T) {
	assert.False(t, (&Application{}).HasAvatar())
	assert.False(t, (&Application{Avatar: strPtr("")}).HasAvatar())
	assert.True(t, (&Application{Avatar: strPtr("data:image/png;base64,AA==")}).HasAvatar())
}

func TestUserRoleCapitalizedString(t *testing.T) {
	assert.Equal(t, "Admin", UserRoleAdmin.CapitalizedString())
	assert.Equal(t, "Moderator", UserRoleModerator.CapitalizedString())
}
