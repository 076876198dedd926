package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)

	earlier, err := u.NewULIDFromTimestamp(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Less(t, earlier, id, "ULIDs should sort by timestamp")
}

func TestNewUsername(t *testing.T) {
	u := New()

	name := u.NewUsername()
	assert.True(t, strings.HasPrefix(name, "user-"))
	assert.Len(t, name, len("user-")+6)

	other := u.NewUsername()
	assert.NotEqual(t, name, other)
}

func TestNewSlug(t *testing.T) {
	u := New()

	slug := u.NewSlug("Hello, World! A Post")
	assert.True(t, strings.HasPrefix(slug, "hello-world-a-post-"))
	assert.Len(t, slug, len("hello-world-a-post-")+8)

	again := u.NewSlug("Hello, World! A Post")
	assert.NotEqual(t, slug, again, "same title must not collide")
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	makeHeader := func(name, contentType string, size int64) *multipart.FileHeader {
		header := textproto.MIMEHeader{}
		if contentType != "" {
			header.Set("Content-Type", contentType)
		}
		return &multipart.FileHeader{
			Filename: name,
			Size:     size,
			Header:   header,
		}
	}

	tests := []struct {
		name    string
		file    *multipart.FileHeader
		wantErr bool
	}{
		{
			name:    "valid png",
			file:    makeHeader("banner.png", "image/png", 1024),
			wantErr: false,
		},
		{
			name:    "valid jpeg without content type",
			file:    makeHeader("banner.JPG", "", 1024),
			wantErr: false,
		},
		{
			name:    "nil file",
			file:    nil,
			wantErr: true,
		},
		{
			name:    "too large",
			file:    makeHeader("banner.png", "image/png", 3*1024*1024),
			wantErr: true,
		},
		{
			name:    "not an image extension",
			file:    makeHeader("notes.txt", "text/plain", 10),
			wantErr: true,
		},
		{
			name:    "image extension but wrong content type",
			file:    makeHeader("banner.png", "application/octet-stream", 10),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := u.ValidateImageFile(tt.file)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
