// Package media quản lý việc lưu trữ file ảnh upload trên đĩa cục bộ.
package media

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"friends_cafe/internal/common"
	"friends_cafe/internal/logger"
)

// Các định dạng ảnh được chấp nhận
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// LocalStorage lưu file upload vào một thư mục trên đĩa
type LocalStorage struct {
	dir string // Thư mục chứa file upload
}

// NewLocalStorage tạo LocalStorage và đảm bảo thư mục upload tồn tại
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir trả về thư mục chứa file upload
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save lưu file ảnh upload vào thư mục với tên file duy nhất
// dạng <unix-milli>-<số ngẫu nhiên 9 chữ số><ext>.
// Chỉ chấp nhận ảnh jpg/jpeg/png, các định dạng khác trả về lỗi 400.
//
// Parameters:
//   - file: File header từ multipart form
//
// Returns:
//   - string: Tên file đã lưu (không kèm đường dẫn thư mục)
//   - error: Lỗi nếu có
func (s *LocalStorage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			"Only jpg, jpeg, png images are allowed",
			common.StatusBadRequest,
			nil,
		)
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "" {
		if !allowedContentTypes[contentType] {
			return "", common.NewError(
				common.ErrCodeValidationInput,
				"Only jpg, jpeg, png images are allowed",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	name := fmt.Sprintf("%d-%09d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return name, nil
}

// Remove xóa file theo tên, best-effort: file không tồn tại không phải là lỗi.
// Lỗi xóa chỉ được log, không làm thất bại thao tác gọi nó.
func (s *LocalStorage) Remove(name string) {
	if name == "" {
		return
	}
	// Chặn path traversal: chỉ chấp nhận tên file thuần
	if filepath.Base(name) != name {
		return
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		logger.GetAppLogger().WithError(err).Warnf("Failed to remove uploaded file %s", name)
	}
}
