package v1

import (
	"encoding/base64"
	"strings"

	"github.com/pixself/pixself-api/internal/errors"
)

const pngDataURLPrefix = "data:image/png;base64,"

// renderDataURL wraps PNG bytes as a data URL
func renderDataURL(pngBytes []byte) string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}

// decodeImageDataURL unwraps an optional PNG data URL from the client.
// Empty input is allowed; anything else must be a well-formed PNG data URL.
func decodeImageDataURL(dataURL string) ([]byte, error) {
	if dataURL == "" {
		return nil, nil
	}
	payload, ok := strings.CutPrefix(dataURL, pngDataURLPrefix)
	if !ok {
		return nil, errors.InvalidArgument("imageDataUrl must be a PNG data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.InvalidArgumentf("imageDataUrl is not valid base64: %v", err)
	}
	return data, nil
}
