package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "recording.webm", "recording.webm"},
		{"path separators", "a/b\\c.webm", "a_b_c.webm"},
		{"control chars", "a\nb\tc", "a_b_c"},
		{"unicode", "запись.webm", ".webm"},
		{"empty", "", "uploaded_file"},
		{"collapsed runs", "a  __  b", "a_b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SanitizeFilename(tc.in))
		})
	}
}

func TestFSUploader_Upload(t *testing.T) {
	root := t.TempDir()
	u := NewFSUploader(root)

	ref, err := u.Upload(context.Background(), []string{"p1", "42", "artifact_upload"}, "rec.webm", strings.NewReader("payload"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join("p1", "42", "artifact_upload", "rec.webm"), ref)

	data, err := os.ReadFile(filepath.Join(root, ref))
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
}

func TestFSUploader_SkipsEmptyFolders(t *testing.T) {
	root := t.TempDir()
	u := NewFSUploader(root)

	ref, err := u.Upload(context.Background(), []string{"p1", "", "stage"}, "rec.webm", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join("p1", "stage", "rec.webm"), ref)
}

func TestFSUploader_SanitizesHostileNames(t *testing.T) {
	root := t.TempDir()
	u := NewFSUploader(root)

	ref, err := u.Upload(context.Background(), []string{"../p1"}, "../../escape.webm", strings.NewReader("x"))
	require.NoError(t, err)

	abs := filepath.Join(root, ref)
	require.True(t, strings.HasPrefix(abs, root))

	_, err = os.Stat(abs)
	require.NoError(t, err)
}
