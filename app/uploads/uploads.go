// Package uploads stores post images on disk and serves them back
// under the /uploads/ path prefix.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PathPrefix is the URL prefix under which stored images are served.
const PathPrefix = "/uploads/"

// Store writes uploaded images into a single directory, each under a
// random name so uploads never collide or overwrite one another.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory images are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an uploaded file to disk and returns its public path
// (e.g. "/uploads/3f2a....png").
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %v", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return PathPrefix + name, nil
}

// Remove deletes the file behind a public image path. Only the base
// name is used, so a stored path can never reach outside the uploads
// directory. Removing an empty or already-gone path is not an error.
func (s *Store) Remove(imagePath string) error {
	if imagePath == "" {
		return nil
	}
	name := path.Base(imagePath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
