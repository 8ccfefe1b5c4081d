// Package storage uploads post images to Cloudinary and deletes them by
// their public URL.
package storage

import (
	"context"
	"io"
)

// ImageStorage is the file-storage collaborator. Upload returns a public
// URL for the stored file; Delete removes a previously uploaded file given
// that URL.
type ImageStorage interface {
	Upload(ctx context.Context, file io.Reader, filename, ownerID string) (string, error)
	Delete(ctx context.Context, url string) error
}
