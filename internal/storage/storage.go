package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Directory prefixes for the two kinds of uploads.
const (
	DirUploads         = "uploads"
	DirProfilePictures = "uploads/profile-pictures"
)

// MediaStore turns an uploaded file into a stable opaque reference. The
// post store saves the reference verbatim and never looks inside it.
type MediaStore interface {
	Save(ctx context.Context, dir string, file *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads under a local root directory and returns the
// forward-slash relative path, which doubles as the URL under /uploads.
type DiskStore struct {
	Root string // parent of DirUploads, usually "."
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{Root: root}
}

func (s *DiskStore) Save(_ context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	// Timestamp prefix keeps names unique across identical uploads.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	rel := path.Join(dir, name)

	if err := os.MkdirAll(filepath.Join(s.Root, filepath.FromSlash(dir)), 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Root, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return rel, nil
}
