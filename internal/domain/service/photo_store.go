package service

import "context"

// PhotoStore persists uploaded images and returns URLs for serving them.
type PhotoStore interface {
	// Save writes the image bytes under a generated key and returns the
	// public path the image is served from.
	Save(ctx context.Context, filename, contentType string, data []byte) (string, error)

	// Delete removes a previously stored image by its public path.
	// Deleting a path that does not exist is not an error.
	Delete(ctx context.Context, url string) error
}
