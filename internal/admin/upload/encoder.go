// Package upload turns local files into inline data URLs the API stores in
// imageUrls and pdfUrl.
package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

const (
	MaxImageBytes int64 = 5 << 20
	// MaxPDFBytes keeps the encoded data URL well inside MongoDB's 16 MB
	// document limit, leaving room for the rest of the project.
	MaxPDFBytes int64 = 11 << 20
)

// Encoder encodes one file into a transportable string, enforcing a size ceiling.
type Encoder interface {
	Encode(ctx context.Context, path string) (string, error)
}

// TooLargeError rejects a file over the encoder's ceiling.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s is too large (%s, limit %s)", filepath.Base(e.Path), humanSize(e.Size), humanSize(e.Limit))
}

// FileEncoder reads files from disk into base64 data URLs.
type FileEncoder struct {
	MaxBytes int64
	// MediaType overrides detection when set.
	MediaType string
}

func NewImageEncoder() *FileEncoder {
	return &FileEncoder{MaxBytes: MaxImageBytes}
}

func NewPDFEncoder() *FileEncoder {
	return &FileEncoder{MaxBytes: MaxPDFBytes, MediaType: "application/pdf"}
}

func (e *FileEncoder) Encode(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if e.MaxBytes > 0 && info.Size() > e.MaxBytes {
		return "", &TooLargeError{Path: path, Size: info.Size(), Limit: e.MaxBytes}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mediaType := e.MediaType
	if mediaType == "" {
		mediaType = mime.TypeByExtension(filepath.Ext(path))
	}
	if mediaType == "" {
		mediaType = http.DetectContentType(data)
	}
	return EncodeDataURL(mediaType, data), nil
}

func humanSize(n int64) string {
	const mb = 1 << 20
	if n >= mb {
		return fmt.Sprintf("%.1f MB", float64(n)/mb)
	}
	return fmt.Sprintf("%d KB", (n+1023)/1024)
}

// EncodeDataURL builds a base64 data URL.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
