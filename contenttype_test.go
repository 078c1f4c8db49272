package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "jpeg", file: "photo.jpg", want: "image/jpeg"},
		{name: "uppercase extension", file: "PHOTO.JPG", want: "image/jpeg"},
		{name: "png", file: "icon.png", want: "image/png"},
		{name: "pdf", file: "report.pdf", want: "application/pdf"},
		{name: "json", file: "data.json", want: "application/json"},
		{name: "plain text", file: "notes.txt", want: "text/plain"},
		{name: "nested key", file: "photos/2024/summer.webp", want: "image/webp"},
		{name: "no extension", file: "Makefile", want: "application/octet-stream"},
		{name: "unknown extension", file: "blob.zzz", want: "application/octet-stream"},
		{name: "trailing dot", file: "weird.", want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, contentTypeFor(tt.file))
		})
	}
}
