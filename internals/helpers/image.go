// file: internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"blackbear_backend/internals/errs"
)

const (
	maxImageWidth = 1600
	webpQuality   = 85
)

// SaveGalleryImage stores an uploaded image under uploadsDir and returns its
// public URL path. Images are re-encoded to WebP: decoded with EXIF
// auto-orientation, downscaled to maxImageWidth when wider, quality 85.
// Anything that does not decode as an image is rejected.
func SaveGalleryImage(fh *multipart.FileHeader, uploadsDir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", errs.NewValidation("Only image uploads are allowed.")
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s.webp", time.Now().UnixMilli(), uuid.NewString())
	if err := os.WriteFile(filepath.Join(uploadsDir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return "/uploads/" + name, nil
}

// RemoveUpload deletes the file behind a /uploads/ URL. Best effort: a
// missing file or removal failure is only logged, never returned.
func RemoveUpload(imageURL, uploadsDir string) {
	name := strings.TrimPrefix(imageURL, "/uploads/")
	if name == imageURL || name == "" {
		return
	}

	full := filepath.Join(uploadsDir, filepath.Clean(name))
	rel, err := filepath.Rel(uploadsDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARNING] could not remove upload %s: %v", full, err)
	}
}
