// Package upload is the photo-upload collaborator: it turns a user-selected
// image file into a data URI. The rest of the system treats the result as an
// opaque string; no size or content validation happens here. The caller
// stages the URI in its editing buffer and commits it to the account only on
// an explicit save.
package upload

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// DataURI reads the file at path and encodes it as data:<mime>;base64,....
// The MIME type comes from the file extension, falling back to content
// sniffing.
func DataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
