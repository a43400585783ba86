package utils

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngData(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}
	return buf.Bytes()
}

func TestUtils_ShouldDownloadImage(t *testing.T) {
	data := pngData(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL + "/sample.png")
	if err != nil {
		t.Fatalf("couldn't download the test file: %v", err)
	}
	defer os.Remove(f.Name())

	if !strings.Contains(f.Name(), "atlas") {
		t.Errorf("the downloaded image should have been saved into a temporary atlas file")
	}
}

func TestUtils_ShouldRejectNonImageDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	if _, err := DownloadImage(srv.URL + "/sample.txt"); err == nil {
		t.Errorf("a non-image download should have been rejected")
	}
}

func TestUtils_ShouldRejectFailedDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL + "/missing.png")
	if err == nil {
		t.Fatalf("a failed download should have been rejected")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("the error should carry the response status, got %v", err)
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/atlas.png") {
		t.Errorf("a valid URL should have been accepted")
	}
	if IsValidUrl("sprites/player.png") {
		t.Errorf("a relative path should not be reported as a valid URL")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sample := filepath.Join(t.TempDir(), "sample.png")
	if err := os.WriteFile(sample, pngData(t), 0644); err != nil {
		t.Fatalf("could not write the sample image: %v", err)
	}

	ftype, err := DetectContentType(sample)
	if err != nil {
		t.Fatalf("could not detect the content type: %v", err)
	}
	if !strings.Contains(ftype, "image") {
		t.Errorf("expected an image content type, got %v", ftype)
	}
}
