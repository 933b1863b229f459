package paging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		def       int
		max       int
		want      int
	}{
		{"within limit", 50, 20, 100, 50},
		{"clamped to aha max", 500, 20, 100, 100},
		{"exactly max", 100, 20, 100, 100},
		{"zero uses default", 0, 20, 100, 20},
		{"negative uses default", -5, 25, 250, 25},
		{"confluence search cap", 40, 10, 25, 25},
		{"confluence list cap", 1000, 25, 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Size(tt.requested, tt.def, tt.max))
		})
	}
}

func TestOffsetValues(t *testing.T) {
	v := Offset{Page: 3, PerPage: 500}.Values(AhaMaxPerPage)
	assert.Equal(t, "3", v.Get("page"))
	assert.Equal(t, "100", v.Get("per_page"))

	v = Offset{}.Values(AhaMaxPerPage)
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "20", v.Get("per_page"))
}

func TestPerPageOnly(t *testing.T) {
	v := PerPageOnly(500, AhaMaxPerPage)
	assert.Equal(t, "per_page=100", v.Encode())
}

func TestCursorApply(t *testing.T) {
	v := url.Values{}
	Cursor("").Apply(v)
	assert.Empty(t, v.Get("cursor"))

	token := "eyJpZCI6MTIzfQ=="
	Cursor(token).Apply(v)
	assert.Equal(t, token, v.Get("cursor"), "cursor must pass through unmodified")
}

func TestNextCursor(t *testing.T) {
	tests := []struct {
		next string
		want Cursor
	}{
		{"", ""},
		{"/wiki/api/v2/pages?cursor=abc%3D%3D&limit=25", "abc=="},
		{"/wiki/api/v2/pages?space-id=9&cursor=xyz", "xyz"},
		{"/wiki/api/v2/pages?limit=25", "/wiki/api/v2/pages?limit=25"},
		{"opaque-token", "opaque-token"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextCursor(tt.next), "NextCursor(%q)", tt.next)
	}
}
