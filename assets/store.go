package assets

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidImage = errors.New("image must be a base64 data URI")

// Store saves uploaded images under a media root and hands back the
// relative reference the recipe row keeps.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// SaveBase64Image decodes a "data:image/<ext>;base64,<payload>" string,
// writes it under <root>/recipes/ and returns the relative path.
func (s *Store) SaveBase64Image(data string) (string, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return "", ErrInvalidImage
	}

	rest := strings.TrimPrefix(data, "data:image/")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", ErrInvalidImage
	}
	ext := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrInvalidImage
	}

	name := filepath.Join("recipes", uuid.NewString()+"."+ext)
	full := filepath.Join(s.Root, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, raw, 0o644); err != nil {
		return "", err
	}

	return filepath.ToSlash(name), nil
}
