package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/config"
)

func TestUploadService_Save(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	payload := []byte("\x89PNG fake image bytes")

	result, err := h.services.Upload.Save(context.Background(), "image/png", "portrait.png", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("Stored name should keep the original extension, got %q", result.Filename)
	}
	if result.Filename == "portrait.png" {
		t.Error("Stored name must not reuse the original name")
	}
	if result.URL != "/uploads/"+result.Filename {
		t.Errorf("URL should point at the stored name, got %q", result.URL)
	}

	stored, err := os.ReadFile(filepath.Join(h.uploadDir, result.Filename))
	if err != nil {
		t.Fatalf("Stored file not readable: %v", err)
	}
	if !bytes.Equal(stored, payload) {
		t.Error("Stored bytes should match the uploaded bytes")
	}
}

func TestUploadService_Save_UniqueNames(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)
	ctx := context.Background()

	first, err := h.services.Upload.Save(ctx, "image/jpeg", "photo.jpg", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := h.services.Upload.Save(ctx, "image/jpeg", "photo.jpg", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first.Filename == second.Filename {
		t.Error("Two uploads of the same original name must not collide")
	}
}

func TestUploadService_Save_RejectsNonImage(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)

	_, err := h.services.Upload.Save(context.Background(), "text/plain", "notes.txt", strings.NewReader("hello"))
	if apperrors.KindOf(err) != apperrors.KindInvalidMediaType {
		t.Fatalf("Expected InvalidMediaType, got %v", err)
	}

	entries, readErr := os.ReadDir(h.uploadDir)
	if readErr != nil {
		t.Fatalf("ReadDir failed: %v", readErr)
	}
	if len(entries) != 0 {
		t.Error("Rejected upload must not leave a file behind")
	}
}

func TestUploadService_Save_DotlessName(t *testing.T) {
	h := newTestHarness(t, config.AuthModeToken)

	result, err := h.services.Upload.Save(context.Background(), "image/png", "screenshot", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(result.Filename, ".undefined") {
		t.Errorf("Dotless original name should yield the literal undefined extension, got %q", result.Filename)
	}
}
