package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ObjectUploader stores a blob and returns its publicly addressable URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
}

// PhotoResolver decides whether a submitted photo value is already an
// external reference or inline data that needs uploading.
type PhotoResolver struct {
	Uploader ObjectUploader
	Folder   string
}

func NewPhotoResolver(uploader ObjectUploader, folder string) *PhotoResolver {
	return &PhotoResolver{Uploader: uploader, Folder: folder}
}

// Resolve maps a raw photo value to a stored reference. Empty input means
// no photo; values that already carry an http(s) scheme are returned
// unchanged so re-submitting a stored reference never re-uploads.
// Anything else is treated as inline data (data URI or bare base64) and
// uploaded under the configured folder. Upload failures are unexpected
// faults and abort the enclosing operation.
func (r *PhotoResolver) Resolve(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if strings.HasPrefix(raw, "http") {
		return raw, nil
	}

	data, contentType, err := decodeInline(raw)
	if err != nil {
		return "", err
	}
	object := fmt.Sprintf("%s/%s%s", r.Folder, uuid.NewString(), extensionFor(contentType))
	return r.Uploader.Upload(ctx, object, contentType, data)
}

// decodeInline decodes a data URI or bare base64 payload. Input that is
// not base64 at all is passed through as raw bytes.
func decodeInline(raw string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	payload := raw
	if strings.HasPrefix(raw, "data:") {
		rest := strings.TrimPrefix(raw, "data:")
		meta, b64, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data uri")
		}
		contentType = strings.TrimSuffix(meta, ";base64")
		payload = b64
	}
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, contentType, nil
	}
	return []byte(payload), contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
