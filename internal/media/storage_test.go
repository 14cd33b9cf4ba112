package media

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader tạo multipart.FileHeader từ tên file và nội dung để test
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestLocalStorageSave(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("Lưu ảnh png hợp lệ với tên file duy nhất", func(t *testing.T) {
		file := buildFileHeader(t, "biryani.png", "image/png", []byte("fake-png-data"))

		name, err := storage.Save(file)
		require.NoError(t, err)

		// Tên file: <unix-milli>-<9 chữ số>.png
		assert.Regexp(t, regexp.MustCompile(`^\d{13}-\d{9}\.png$`), name)

		data, err := os.ReadFile(filepath.Join(storage.Dir(), name))
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png-data"), data)
	})

	t.Run("Giữ nguyên phần mở rộng jpg", func(t *testing.T) {
		file := buildFileHeader(t, "samosa.JPG", "image/jpeg", []byte("fake-jpg"))

		name, err := storage.Save(file)
		require.NoError(t, err)
		assert.True(t, filepath.Ext(name) == ".jpg")
	})

	t.Run("Từ chối định dạng không phải ảnh", func(t *testing.T) {
		file := buildFileHeader(t, "menu.pdf", "application/pdf", []byte("%PDF"))

		_, err := storage.Save(file)
		require.Error(t, err)
	})

	t.Run("Từ chối content-type không khớp", func(t *testing.T) {
		file := buildFileHeader(t, "script.png", "text/html", []byte("<html>"))

		_, err := storage.Save(file)
		require.Error(t, err)
	})
}

func TestLocalStorageRemove(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("Xóa file đã lưu", func(t *testing.T) {
		file := buildFileHeader(t, "dosa.jpeg", "image/jpeg", []byte("img"))
		name, err := storage.Save(file)
		require.NoError(t, err)

		storage.Remove(name)

		_, statErr := os.Stat(filepath.Join(storage.Dir(), name))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("File không tồn tại không gây lỗi", func(t *testing.T) {
		storage.Remove("1700000000000-123456789.png")
	})

	t.Run("Tên file chứa đường dẫn bị bỏ qua", func(t *testing.T) {
		storage.Remove("../outside.png")
	})
}
