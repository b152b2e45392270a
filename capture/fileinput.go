package capture

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FileInput is a closed variant over the two ways a caller can hand the
// SDK a file: a filesystem path or an in-memory byte buffer. Use FromPath
// or FromBytes to construct one.
type FileInput struct {
	path  string
	data  []byte
	bytes bool
}

// FromPath references a file on disk. The file is read in full when the
// input is used; the filename is derived from the path's base name.
func FromPath(path string) FileInput {
	return FileInput{path: path}
}

// FromBytes wraps an in-memory payload. Operations that consume it require
// an explicit filename, since the payload carries none of its own.
func FromBytes(data []byte) FileInput {
	return FileInput{data: data, bytes: true}
}

// mimeTypes maps common filename extensions to their MIME types. The table
// mirrors what the platform's other SDKs report so registrations agree on
// type regardless of the client language.
var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"pdf":  "application/pdf",
	"json": "application/json",
	"txt":  "text/plain",
}

// mimeTypeFor infers a MIME type from the filename extension, consulting
// the fixed table first and the system registry second, with a generic
// binary fallback.
func mimeTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if mimeType, ok := mimeTypes[ext]; ok {
		return mimeType
	}
	if mimeType := mime.TypeByExtension(filepath.Ext(filename)); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}

// normalize resolves the input to (data, filename, mimeType). Path inputs
// are read from disk; byte inputs take the explicit filename. The payload
// must be non-empty.
func (f FileInput) normalize(filename string) ([]byte, string, string, error) {
	var data []byte
	var name string

	if f.bytes {
		if filename == "" {
			return nil, "", "", newValidationError("filename is required for binary input")
		}
		data = f.data
		name = filename
	} else {
		if _, err := os.Stat(f.path); err != nil {
			return nil, "", "", newValidationError(fmt.Sprintf("File not found: %s", f.path))
		}
		read, err := os.ReadFile(f.path)
		if err != nil {
			return nil, "", "", newValidationError(fmt.Sprintf("failed to read file %s: %v", f.path, err))
		}
		data = read
		name = filepath.Base(f.path)
	}

	if len(data) == 0 {
		return nil, "", "", newValidationError("file cannot be empty")
	}

	return data, name, mimeTypeFor(name), nil
}
