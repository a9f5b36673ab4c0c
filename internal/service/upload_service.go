package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/portfolio-blog-api/internal/apperrors"
	"github.com/portfolio-blog-api/internal/config"
	"github.com/portfolio-blog-api/internal/models"
)

// uploadService stores image uploads under a fixed directory with freshly
// generated unique names.
type uploadService struct {
	cfg config.UploadConfig
	log zerolog.Logger
}

func newUploadService(cfg config.UploadConfig, log zerolog.Logger) UploadService {
	return &uploadService{
		cfg: cfg,
		log: log.With().Str("service", "upload").Logger(),
	}
}

// Save validates the content type, derives a unique storage name and writes
// the bytes. Authorization has already happened by the time this runs.
func (s *uploadService) Save(ctx context.Context, contentType, originalName string, r io.Reader) (*models.UploadResult, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.InvalidMediaType("Only image files are allowed")
	}

	filename := uuid.New().String() + "." + fileExtension(originalName)

	if err := os.MkdirAll(s.cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.cfg.Dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, r)
	if err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	s.log.Info().
		Str("filename", filename).
		Str("content_type", contentType).
		Int64("size_bytes", written).
		Msg("Upload stored")

	return &models.UploadResult{
		Filename: filename,
		URL:      s.cfg.PublicURL + "/" + filename,
	}, nil
}

// fileExtension takes the substring after the last dot of the original name.
// A dotless name yields the literal "undefined"; existing clients rely on
// that name shape, so it is kept (see DESIGN.md).
func fileExtension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return "undefined"
}
