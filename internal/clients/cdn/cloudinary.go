// Package cdn uploads rendered composites to the image CDN so orders can
// reference a stable URL instead of a data URL.
package cdn

//go:generate mockgen -destination=mock/mock_uploader.go -package=cdnmock github.com/pixself/pixself-api/internal/clients/cdn Uploader

import (
	"bytes"
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/pixself/pixself-api/internal/errors"
)

// Uploader defines the interface for composite image uploads
type Uploader interface {
	// UploadPNG stores PNG bytes under the given name and returns the
	// public URL
	UploadPNG(ctx context.Context, name string, data []byte) (string, error)
}

const uploadFolder = "pixself/orders"

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from a CLOUDINARY_URL-style
// connection string
func NewCloudinaryUploader(cloudURL string) (Uploader, error) {
	if cloudURL == "" {
		return nil, errors.InvalidArgument("cloudinary URL is required")
	}

	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to init cloudinary")
	}

	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) UploadPNG(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.InvalidArgument("image data cannot be empty")
	}

	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID: name,
		Folder:   uploadFolder,
	})
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "failed to upload composite image")
	}

	return result.SecureURL, nil
}
