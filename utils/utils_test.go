package utils

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUtils_MinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min expected to return the smaller value")
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max expected to return the bigger value")
	}
	if Abs(-4.5) != 4.5 {
		t.Errorf("Abs expected to return the absolute value")
	}
	if Min(2.5, 2.5) != 2.5 {
		t.Errorf("Min of equal values expected to return the value itself")
	}
}

func TestUtils_FormatTime(t *testing.T) {
	if got := FormatTime(30 * time.Second); got != "30.00s" {
		t.Errorf("FormatTime expected to return 30.00s, got: %v", got)
	}
	if got := FormatTime(90 * time.Second); got != "1m 30.00s" {
		t.Errorf("FormatTime expected to return 1m 30.00s, got: %v", got)
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	ok := IsValidUrl("https://example.com/sample.jpg")
	if !ok {
		t.Errorf("A valid URL should have been provided")
	}
	if IsValidUrl("testdata/sample.jpg") {
		t.Errorf("A local path should not be detected as URL")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleImg := filepath.Join(t.TempDir(), "sample.png")

	f, err := os.Create(sampleImg)
	if err != nil {
		t.Fatalf("could not create the sample image: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("could not encode the sample image: %v", err)
	}
	f.Close()

	ftype, err := DetectFileContentType(sampleImg)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype, "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}
