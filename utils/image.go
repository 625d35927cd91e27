package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Field-level messages surfaced to the form, hence full sentences.
var (
	ErrImageTooLarge  = errors.New("Ukuran gambar maksimal adalah 2MB.")
	ErrNotAnImage     = errors.New("File yang dipilih harus berupa gambar.")
	ErrImageUnreadble = errors.New("Gagal memproses gambar. Coba lagi.")
)

// FileToDataURI reads an uploaded file and embeds it as a base64 data URI.
// The MIME type is sniffed from the content, not trusted from the header.
func FileToDataURI(fileHeader *multipart.FileHeader, maxSize int64) (string, error) {
	if fileHeader.Size > maxSize {
		return "", ErrImageTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", ErrImageUnreadble
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return "", ErrImageUnreadble
	}
	if int64(len(data)) > maxSize {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}
