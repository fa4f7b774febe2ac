package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
)

var supportedImageTypes = []string{"image/jpeg", "image/png"}

// CheckImageType sniffs data and returns its MIME type when it is a
// supported photo format.
func CheckImageType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrUnsupportedImage)
	}
	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), supportedImageTypes...) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
	}
	return mtype.String(), nil
}

// DecodeImage turns uploaded JPEG or PNG bytes into an image.
func DecodeImage(data []byte) (image.Image, string, error) {
	mimeType, err := CheckImageType(data)
	if err != nil {
		return nil, "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", mimeType, err)
	}
	return img, mimeType, nil
}
