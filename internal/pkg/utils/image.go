package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageAllowedProfilePictureFormats lists the extensions accepted for
// professional profile pictures.
var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png", ".webp"}

// DecodeBase64Image accepts a data-URI ("data:image/png;base64,....") or a
// bare base64 string and returns the raw bytes plus the file extension
// derived from the declared media type.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	extension := ".png"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed image data URI")
		}
		meta := parts[0]
		payload = parts[1]

		switch {
		case strings.Contains(meta, "image/jpeg"), strings.Contains(meta, "image/jpg"):
			extension = ".jpg"
		case strings.Contains(meta, "image/png"):
			extension = ".png"
		case strings.Contains(meta, "image/webp"):
			extension = ".webp"
		default:
			return nil, "", fmt.Errorf("unsupported image media type in data URI")
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return data, extension, nil
}

func ValidateImageFormat(extension string, allowedFormats []string) error {
	for _, allowed := range allowedFormats {
		if strings.EqualFold(extension, allowed) {
			return nil
		}
	}
	return fmt.Errorf("image format %s is not allowed", extension)
}

func ValidateImageSize(data []byte, maxSizeInMB int) error {
	if int64(len(data)) > int64(maxSizeInMB)*1024*1024 {
		return fmt.Errorf("image exceeds the %dMB size limit", maxSizeInMB)
	}
	return nil
}
