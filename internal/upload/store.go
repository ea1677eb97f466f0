package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded files under a single directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Save writes the uploaded file under a fresh random name, keeping the
// original extension, and returns the generated filename.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file by its generated name. A file that is
// already gone is not an error.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid upload name %q", name)
	}
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL builds the publicly resolvable URL for a stored file from the
// configured base URL. Every handler goes through here, never through
// per-request host guessing.
func PublicURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/uploads/" + name
}

// NameFromURL returns the stored filename a product's image URL points at,
// or "" when the URL is empty or not an upload of ours.
func NameFromURL(imageURL string) string {
	i := strings.LastIndex(imageURL, "/uploads/")
	if i < 0 {
		return ""
	}
	return imageURL[i+len("/uploads/"):]
}
