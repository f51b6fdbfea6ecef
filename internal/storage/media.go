package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	ErrNotImage = errors.New("storage: upload is not an image")
	ErrTooLarge = errors.New("storage: upload exceeds size limit")
)

var imageExt = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
}

// MediaStore keeps uploaded post images on local disk under <root>/posts/.
type MediaStore struct {
	root     string
	maxBytes int64
}

func NewMediaStore(root string, maxBytes int64) *MediaStore {
	return &MediaStore{root: root, maxBytes: maxBytes}
}

// SaveImage stores the upload and returns its media-relative path, e.g.
// "posts/3f2a….png". Content type is sniffed from the payload, not trusted
// from the request.
func (s *MediaStore) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", ErrTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	ext, ok := imageExt[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrNotImage
	}

	rel := filepath.Join("posts", uuid.NewString()+ext)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes)); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// Root is the directory served under /media/.
func (s *MediaStore) Root() string { return s.root }
