package shophdl

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopmodels "friends_cafe/internal/api/shop/models"
)

// fakeShopStatusService giả lập ShopStatusService trong test
type fakeShopStatusService struct {
	status  shopmodels.ShopStatus
	updates []map[string]interface{}
}

func (f *fakeShopStatusService) GetOrCreateDefault(ctx context.Context) (shopmodels.ShopStatus, error) {
	return f.status, nil
}

func (f *fakeShopStatusService) UpdateStatus(ctx context.Context, update map[string]interface{}) (shopmodels.ShopStatus, error) {
	f.updates = append(f.updates, update)
	if isOpen, ok := update["isOpen"].(bool); ok {
		f.status.IsOpen = isOpen
	}
	if accepting, ok := update["acceptingOrders"].(bool); ok {
		f.status.AcceptingOrders = accepting
	}
	if message, ok := update["message"].(string); ok {
		f.status.Message = message
	}
	return f.status, nil
}

func newTestApp(service *fakeShopStatusService) *fiber.App {
	h := &ShopStatusHandler{service: service}
	app := fiber.New()
	api := app.Group("/api")
	api.Get("/shop-status", h.Get)
	api.Put("/shop-status", h.Update)
	return app
}

func TestShopStatusGet(t *testing.T) {
	service := &fakeShopStatusService{status: shopmodels.ShopStatus{
		IsOpen:          true,
		AcceptingOrders: true,
	}}
	app := newTestApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/shop-status", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var status shopmodels.ShopStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.True(t, status.IsOpen)
	assert.True(t, status.AcceptingOrders)
}

func TestShopStatusUpdate(t *testing.T) {
	t.Run("Cập nhật đóng cửa kèm thông báo", func(t *testing.T) {
		service := &fakeShopStatusService{status: shopmodels.ShopStatus{
			IsOpen:          true,
			AcceptingOrders: true,
		}}
		app := newTestApp(service)

		body := `{"isOpen":false,"message":"Nghỉ lễ"}`
		req := httptest.NewRequest("PUT", "/api/shop-status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var status shopmodels.ShopStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.False(t, status.IsOpen)
		assert.Equal(t, "Nghỉ lễ", status.Message)

		require.Len(t, service.updates, 1)
		// Trường không gửi lên thì không nằm trong update
		_, hasAccepting := service.updates[0]["acceptingOrders"]
		assert.False(t, hasAccepting)
	})

	t.Run("Body hỏng trả về 400", func(t *testing.T) {
		service := &fakeShopStatusService{}
		app := newTestApp(service)

		req := httptest.NewRequest("PUT", "/api/shop-status", strings.NewReader(`{broken`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Empty(t, service.updates)
	})
}
