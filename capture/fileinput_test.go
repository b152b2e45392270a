package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePathInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("fake image data"), 0o644))

	data, filename, mimeType, err := FromPath(path).normalize("")
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image data"), data)
	assert.Equal(t, "photo.jpg", filename)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestNormalizePathInputMissingFile(t *testing.T) {
	_, _, _, err := FromPath("/no/such/file.png").normalize("")

	var captureErr *Error
	require.ErrorAs(t, err, &captureErr)
	assert.Equal(t, KindValidation, captureErr.Kind)
	assert.Equal(t, "File not found: /no/such/file.png", captureErr.Message)
}

func TestNormalizePathInputUnreadableFile(t *testing.T) {
	// A directory passes the existence check but fails the read; the error
	// must carry the read failure, not a missing-file message.
	dir := t.TempDir()

	_, _, _, err := FromPath(dir).normalize("")

	var captureErr *Error
	require.ErrorAs(t, err, &captureErr)
	assert.Equal(t, KindValidation, captureErr.Kind)
	assert.Contains(t, captureErr.Message, "failed to read file "+dir)
	assert.NotContains(t, captureErr.Message, "File not found")
}

func TestNormalizeBytesInput(t *testing.T) {
	data, filename, mimeType, err := FromBytes([]byte("payload")).normalize("doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
	assert.Equal(t, "doc.pdf", filename)
	assert.Equal(t, "application/pdf", mimeType)
}

func TestNormalizeBytesInputRequiresFilename(t *testing.T) {
	_, _, _, err := FromBytes([]byte("payload")).normalize("")

	var captureErr *Error
	require.ErrorAs(t, err, &captureErr)
	assert.Equal(t, KindValidation, captureErr.Kind)
	assert.Equal(t, "filename is required for binary input", captureErr.Message)
}

func TestNormalizeRejectsEmptyPayload(t *testing.T) {
	_, _, _, err := FromBytes(nil).normalize("a.png")
	assert.True(t, IsKind(err, KindValidation))
	assert.EqualError(t, err, "VALIDATION_ERROR: file cannot be empty")

	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, _, _, err = FromPath(path).normalize("")
	assert.True(t, IsKind(err, KindValidation))
}

func TestMimeTypeFor(t *testing.T) {
	testCases := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "image/jpeg"},
		{"PHOTO.JPEG", "image/jpeg"},
		{"clip.mov", "video/quicktime"},
		{"track.mp3", "audio/mpeg"},
		{"notes.txt", "text/plain"},
		{"data.json", "application/json"},
		{"blob.unknownext", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
	}

	for _, tc := range testCases {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.want, mimeTypeFor(tc.filename))
		})
	}
}
