package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_HasNext(t *testing.T) {
	next := "http://localhost:8000/api/posts/posts/?page=2"
	empty := ""

	assert.True(t, Page[Post]{Next: &next}.HasNext())
	assert.False(t, Page[Post]{Next: &empty}.HasNext())
	assert.False(t, Page[Post]{}.HasNext())
}

func TestPage_DecodesEnvelope(t *testing.T) {
	body := `{"results":[{"id":1,"title":"hello"}],"count":21,"next":"http://x/?page=2","previous":null}`

	var page Page[Post]
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Equal(t, 21, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "hello", page.Results[0].Title)
	assert.True(t, page.HasNext())
	assert.Nil(t, page.Previous)
}

func TestUploadConfig_Allows(t *testing.T) {
	tests := []struct {
		name  string
		cfg   UploadConfig
		mime  string
		allow bool
	}{
		{"empty list allows all", UploadConfig{}, "application/zip", true},
		{"listed", UploadConfig{AllowedTypes: []string{"image/png", "image/jpeg"}}, "image/jpeg", true},
		{"not listed", UploadConfig{AllowedTypes: []string{"image/png"}}, "image/gif", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allow, tt.cfg.Allows(tt.mime))
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "爱丽丝", User{Username: "alice", Nickname: "爱丽丝"}.DisplayName())
	assert.Equal(t, "alice", User{Username: "alice"}.DisplayName())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
