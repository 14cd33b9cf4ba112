package menuhdl

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	menumodels "friends_cafe/internal/api/menu/models"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// fakeMenuService giả lập MenuItemService trong test, không cần MongoDB
type fakeMenuService struct {
	items      []menumodels.MenuItem
	insertErr  error
	deletedIDs []primitive.ObjectID
}

func (f *fakeMenuService) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]menumodels.MenuItem, error) {
	return f.items, nil
}

func (f *fakeMenuService) InsertOne(ctx context.Context, data menumodels.MenuItem) (menumodels.MenuItem, error) {
	if f.insertErr != nil {
		return menumodels.MenuItem{}, f.insertErr
	}
	data.ID = primitive.NewObjectID()
	f.items = append(f.items, data)
	return data, nil
}

func (f *fakeMenuService) FindOneById(ctx context.Context, id primitive.ObjectID) (menumodels.MenuItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return menumodels.MenuItem{}, common.ErrNotFound
}

func (f *fakeMenuService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (menumodels.MenuItem, error) {
	for i, item := range f.items {
		if item.ID == id {
			update, ok := data.(map[string]interface{})
			if ok {
				if name, has := update["name"].(string); has {
					item.Name = name
				}
				if available, has := update["available"].(bool); has {
					item.Available = available
				}
			}
			f.items[i] = item
			return item, nil
		}
	}
	return menumodels.MenuItem{}, common.ErrNotFound
}

func (f *fakeMenuService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		}
	}
	return common.ErrNotFound
}

// fakeStorage giả lập media.LocalStorage
type fakeStorage struct {
	saved   []string
	removed []string
}

func (f *fakeStorage) Save(file *multipart.FileHeader) (string, error) {
	name := "1700000000000-123456789.png"
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeStorage) Remove(name string) {
	f.removed = append(f.removed, name)
}

func newTestApp(service *fakeMenuService, storage *fakeStorage) *fiber.App {
	global.InitValidator()

	h := &MenuItemHandler{service: service, storage: storage}
	app := fiber.New()
	api := app.Group("/api")
	api.Get("/menu", h.List)
	api.Post("/menu", h.Create)
	api.Put("/menu/:id", h.Update)
	api.Delete("/menu/:id", h.Delete)
	return app
}

func TestMenuItemList(t *testing.T) {
	service := &fakeMenuService{items: []menumodels.MenuItem{
		{ID: primitive.NewObjectID(), Name: "Chicken Biryani", Price: 180, Available: true},
		{ID: primitive.NewObjectID(), Name: "Masala Dosa", Price: 60, Available: true},
	}}
	app := newTestApp(service, &fakeStorage{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/menu", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var items []menumodels.MenuItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken Biryani", items[0].Name)
}

func TestMenuItemCreate(t *testing.T) {
	t.Run("Tạo món kèm ảnh", func(t *testing.T) {
		service := &fakeMenuService{}
		storage := &fakeStorage{}
		app := newTestApp(service, storage)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("name", "Paneer Tikka")
		writer.WriteField("price", "150")
		writer.WriteField("unit", "plate")
		writer.WriteField("available", "true")
		writer.WriteField("category", "Starters")
		part, err := writer.CreateFormFile("image", "tikka.png")
		require.NoError(t, err)
		part.Write([]byte("fake-image"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/menu", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var item menumodels.MenuItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		assert.Equal(t, "Paneer Tikka", item.Name)
		assert.Equal(t, float64(150), item.Price)
		assert.True(t, item.Available)
		assert.Equal(t, "/Uploads/1700000000000-123456789.png", item.Image)
		assert.Len(t, storage.saved, 1)
	})

	t.Run("Không có ảnh thì image rỗng", func(t *testing.T) {
		service := &fakeMenuService{}
		app := newTestApp(service, &fakeStorage{})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("name", "Lemon Tea")
		writer.WriteField("price", "20")
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/menu", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var item menumodels.MenuItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		assert.Equal(t, "", item.Image)
	})

	t.Run("Thiếu tên món trả về 400", func(t *testing.T) {
		app := newTestApp(&fakeMenuService{}, &fakeStorage{})

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("price", "20")
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/menu", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Insert thất bại thì dọn file ảnh đã lưu", func(t *testing.T) {
		service := &fakeMenuService{insertErr: common.ErrMongoWrite}
		storage := &fakeStorage{}
		app := newTestApp(service, storage)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		writer.WriteField("name", "Ghost Item")
		part, err := writer.CreateFormFile("image", "ghost.jpg")
		require.NoError(t, err)
		part.Write([]byte("img"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/api/menu", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, storage.saved, storage.removed)
	})
}

func TestMenuItemUpdate(t *testing.T) {
	existing := menumodels.MenuItem{ID: primitive.NewObjectID(), Name: "Old Name", Available: true}

	t.Run("Cập nhật một phần các trường", func(t *testing.T) {
		service := &fakeMenuService{items: []menumodels.MenuItem{existing}}
		app := newTestApp(service, &fakeStorage{})

		body := strings.NewReader(`{"name":"New Name","available":false}`)
		req := httptest.NewRequest("PUT", "/api/menu/"+existing.ID.Hex(), body)
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var item menumodels.MenuItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		assert.Equal(t, "New Name", item.Name)
		assert.False(t, item.Available)
	})

	t.Run("Id không tồn tại trả về 404", func(t *testing.T) {
		service := &fakeMenuService{}
		app := newTestApp(service, &fakeStorage{})

		req := httptest.NewRequest("PUT", "/api/menu/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		bodyBytes, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(bodyBytes), "Item not found")
	})

	t.Run("Id sai định dạng trả về 400", func(t *testing.T) {
		app := newTestApp(&fakeMenuService{}, &fakeStorage{})

		req := httptest.NewRequest("PUT", "/api/menu/not-an-id", strings.NewReader(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestMenuItemDelete(t *testing.T) {
	t.Run("Xóa món kèm dọn ảnh", func(t *testing.T) {
		item := menumodels.MenuItem{
			ID:    primitive.NewObjectID(),
			Name:  "Vada",
			Image: "/Uploads/1700000000000-987654321.jpg",
		}
		service := &fakeMenuService{items: []menumodels.MenuItem{item}}
		storage := &fakeStorage{}
		app := newTestApp(service, storage)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/menu/"+item.ID.Hex(), nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		bodyBytes, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(bodyBytes), "Item deleted")
		assert.Equal(t, []string{"1700000000000-987654321.jpg"}, storage.removed)
		assert.Empty(t, service.items)
	})

	t.Run("Id không tồn tại trả về 404", func(t *testing.T) {
		app := newTestApp(&fakeMenuService{}, &fakeStorage{})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/menu/"+primitive.NewObjectID().Hex(), nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
