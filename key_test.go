package objects

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		localPath string
		explicit  string
		want      string
		wantErr   bool
	}{
		{name: "derived from relative path", localPath: "./foto.jpg", want: "foto.jpg"},
		{name: "derived from nested path", localPath: "/tmp/uploads/report.pdf", want: "report.pdf"},
		{name: "explicit key wins", localPath: "./foto.jpg", explicit: "photos/summer.jpg", want: "photos/summer.jpg"},
		{name: "explicit without separators unchanged", localPath: "./a.txt", explicit: "b.txt", want: "b.txt"},
		{name: "leading slash stripped", localPath: "./a.txt", explicit: "/photos/a.txt", want: "photos/a.txt"},
		{name: "duplicate separators collapsed", localPath: "./a.txt", explicit: "photos//2024///a.txt", want: "photos/2024/a.txt"},
		{name: "backslashes normalized", localPath: "./a.txt", explicit: "photos\\a.txt", want: "photos/a.txt"},
		{name: "traversal rejected", localPath: "./a.txt", explicit: "../etc/passwd", wantErr: true},
		{name: "embedded traversal rejected", localPath: "./a.txt", explicit: "photos/../../a.txt", wantErr: true},
		{name: "only slashes rejected", localPath: "./a.txt", explicit: "///", wantErr: true},
		{name: "trailing slash rejected", localPath: "./a.txt", explicit: "photos/", wantErr: true},
		{name: "empty local path rejected", localPath: "", wantErr: true},
		{name: "directory local path rejected", localPath: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveKey(tt.localPath, tt.explicit)
			if tt.wantErr {
				require.Error(t, err)
				var e *Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, KindGeneric, e.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, byte('/'), got[0])
		})
	}
}
