// utils/base64.go
package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveBase64Image decodes a base64 payload (with or without a data: prefix)
// and writes it under folder with a fresh uuid filename.
func SaveBase64Image(b64, folder string) (string, error) {
	if idx := strings.Index(b64, ","); idx >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s.png", uuid.NewString())
	path := filepath.Join(folder, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
