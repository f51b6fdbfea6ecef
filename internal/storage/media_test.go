package storage

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func uploadHeader(t *testing.T, field, name string, payload []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	store := NewMediaStore(dir, 10<<20)

	rel, err := store.SaveImage(uploadHeader(t, "image", "pic.png", pngBytes(t)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rel, "posts/"))
	require.True(t, strings.HasSuffix(rel, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	require.Equal(t, pngBytes(t), data)
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	store := NewMediaStore(t.TempDir(), 10<<20)
	_, err := store.SaveImage(uploadHeader(t, "image", "notes.txt", []byte("plain text payload")))
	require.ErrorIs(t, err, ErrNotImage)
}

func TestSaveImageRejectsOversize(t *testing.T) {
	store := NewMediaStore(t.TempDir(), 16)
	_, err := store.SaveImage(uploadHeader(t, "image", "pic.png", pngBytes(t)))
	require.ErrorIs(t, err, ErrTooLarge)
}
