package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/storetrack/attendance-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

// maxPhotoDimension caps the longest side of an uploaded employee photo.
// Kiosk screens render photos small; anything bigger is wasted bytes.
const maxPhotoDimension = 512

type FileService interface {
	// UploadEmployeePhoto stores a photo shown on the kiosk after a scan.
	UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadLogo stores the company logo shown on the kiosk screen.
	UploadLogo(ctx context.Context, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	FileURL(path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadEmployeePhoto validates, downscales and stores an employee photo.
// The stored file is always JPEG regardless of the uploaded format.
func (s *fileServiceImpl) UploadEmployeePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if err := validateImageExt(filename); err != nil {
		return "", err
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	processed, err := normalizePhoto(buffer)
	if err != nil {
		return "", fmt.Errorf("failed to process photo: %w", err)
	}

	newFilename := fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String())
	path := filepath.Join("photos", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(processed), path)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return uploadedPath, nil
}

// UploadLogo stores the logo as-is; logos are small and uploaded rarely.
func (s *fileServiceImpl) UploadLogo(ctx context.Context, file io.Reader, filename string) (string, error) {
	if err := validateImageExt(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	newFilename := fmt.Sprintf("logo-%s%s", uuid.New().String(), ext)
	path := filepath.Join("logo", newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) FileURL(path string) string {
	return s.storage.URL(path)
}

func validateImageExt(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return nil
	}
	return fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
}

// normalizePhoto decodes the image, downscales it so the longest side is at
// most maxPhotoDimension, and re-encodes it as JPEG.
func normalizePhoto(buffer []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxPhotoDimension || height > maxPhotoDimension {
		ratio := float64(maxPhotoDimension) / float64(width)
		if height > width {
			ratio = float64(maxPhotoDimension) / float64(height)
		}
		img = resizeImage(img, int(float64(width)*ratio), int(float64(height)*ratio))
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
