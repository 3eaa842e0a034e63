package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// saveUpload spools a multipart file field to the temp dir and returns the
// local path, or "" when the field is absent. The blob uploader consumes
// local paths, so every upload passes through disk first.
func saveUpload(r *http.Request, field, tempDir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	dst, err := os.CreateTemp(tempDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return dst.Name(), nil
}

func removeTemp(path string) {
	if path != "" {
		os.Remove(path)
	}
}
