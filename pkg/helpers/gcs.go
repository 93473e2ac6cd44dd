package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// AssetUploader publishes small files under a prefix of one bucket.
type AssetUploader struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

// Upload writes data to <prefix>/<name>, guessing the content type from the
// extension, and returns the object's public URL.
func (u *AssetUploader) Upload(ctx context.Context, name string, data []byte) (string, error) {
	object := path.Join(u.Prefix, name)
	w := u.Client.Bucket(u.Bucket).Object(object).NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(path.Ext(name))
	w.ChunkSize = 0 // single request for small files
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", object, err)
	}
	return PublicURL(u.Bucket, object), nil
}

// PublicURL builds a public URL for an object (assuming public read access)
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
