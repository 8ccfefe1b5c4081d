package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const imageFolder = "post-images"

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// Upload stores the file under post-images/{ownerId}/{token} and returns its
// public URL. Cloudinary detects the format itself and suffixes the delivery
// URL with the file extension, so the public id carries none.
func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, _ string, ownerID string) (string, error) {
	publicID := ownerID + "/" + uuid.NewString()

	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         imageFolder,
		PublicID:       publicID,
		Transformation: "c_limit,w_1600,h_1600,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, url string) error {
	publicID, err := publicIDFromURL(url)
	if err != nil {
		return err
	}
	_, err = s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// publicIDFromURL recovers the Cloudinary public id from a delivery URL,
// e.g. .../image/upload/v12345/post-images/abc/def.png -> post-images/abc/def.
func publicIDFromURL(url string) (string, error) {
	_, rest, found := strings.Cut(url, "/upload/")
	if !found {
		return "", fmt.Errorf("not a cloudinary delivery url: %q", url)
	}

	// Drop the version segment when present.
	if strings.HasPrefix(rest, "v") {
		if first, remainder, ok := strings.Cut(rest, "/"); ok && isDigits(first[1:]) {
			rest = remainder
		}
	}
	if rest == "" {
		return "", fmt.Errorf("empty public id in url: %q", url)
	}
	return strings.TrimSuffix(rest, path.Ext(rest)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
