// Package storage keeps uploaded car images on the local filesystem.
// File writes are not transactional with the database rows that
// reference them; handlers compensate by removing a freshly written
// file when the row write fails.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// carImageDir is the web path prefix under which images are served.
const carImageDir = "/image/cars"

type ImageStore struct {
	baseDir string
}

// NewImageStore roots the store at baseDir (the directory served as the
// site's static root) and makes sure the car image directory exists.
func NewImageStore(baseDir string) (*ImageStore, error) {
	dir := filepath.Join(baseDir, "image", "cars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{baseDir: baseDir}, nil
}

// Save writes the uploaded file under a collision-resistant name derived
// from the car id, the current time and the original filename, and
// returns the web path to store on the car row.
func (s *ImageStore) Save(carID string, file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s-%d-%s", carID, time.Now().UnixMilli(), filepath.Base(file.Filename))
	webPath := path.Join(carImageDir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(s.diskPath(webPath))
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	return webPath, nil
}

// Remove deletes the file behind a stored web path. A missing file is
// not an error; the row may outlive the file after a crash.
func (s *ImageStore) Remove(webPath string) error {
	if webPath == "" {
		return nil
	}
	err := os.Remove(s.diskPath(webPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *ImageStore) diskPath(webPath string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(strings.TrimPrefix(webPath, "/")))
}
