package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func uploadedFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("image")
	if err != nil {
		t.Fatal(err)
	}
	return header
}

func TestFileToDataURIEmbedsImage(t *testing.T) {
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	header := uploadedFile(t, "menu.png", content)

	uri, err := FileToDataURI(header, 2*1024*1024)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %.40q", uri)
	}
}

func TestFileToDataURIRejectsNonImage(t *testing.T) {
	header := uploadedFile(t, "notes.txt", []byte("ini bukan gambar, hanya teks biasa"))

	_, err := FileToDataURI(header, 2*1024*1024)
	if err != ErrNotAnImage {
		t.Errorf("err = %v, want ErrNotAnImage", err)
	}
}

func TestFileToDataURIRejectsOversizedFile(t *testing.T) {
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 256)...)
	header := uploadedFile(t, "big.png", content)

	_, err := FileToDataURI(header, 64)
	if err != ErrImageTooLarge {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}
