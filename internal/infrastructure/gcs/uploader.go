// Package gcs adapts Google Cloud Storage to the application's
// ObjectUploader interface.
package gcs

import (
	"bytes"
	"context"

	"cloud.google.com/go/storage"

	"employee-graphql-api/pkg/helpers"
)

type Uploader struct {
	Client *storage.Client
	Bucket string
}

func NewUploader(client *storage.Client, bucket string) *Uploader {
	return &Uploader{Client: client, Bucket: bucket}
}

// Upload writes the blob to the configured bucket and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	return helpers.UploadObject(ctx, u.Client, u.Bucket, objectPath, contentType, bytes.NewReader(data))
}
