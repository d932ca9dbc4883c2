package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New builds a client from an explicit cloudinary:// URL so tests and callers
// can inject their own instead of relying on ambient environment state.
func New(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	if cloudinaryURL == "" {
		// falls back to CLOUDINARY_URL from the environment
		return cloudinary.New()
	}
	return cloudinary.NewFromURL(cloudinaryURL)
}
