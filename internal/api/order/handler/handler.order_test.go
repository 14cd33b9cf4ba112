package orderhdl

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	orderdto "friends_cafe/internal/api/order/dto"
	ordermodels "friends_cafe/internal/api/order/models"
	"friends_cafe/internal/common"
)

// fakeOrderService giả lập OrderService trong test
type fakeOrderService struct {
	placed    []*orderdto.PlaceOrderInput
	placeErr  error
	orders    []ordermodels.Order
	updateErr error
}

func (f *fakeOrderService) PlaceOrders(ctx context.Context, input *orderdto.PlaceOrderInput) ([]ordermodels.Order, error) {
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	f.placed = append(f.placed, input)
	orders := make([]ordermodels.Order, len(input.Items))
	for i, line := range input.Items {
		orders[i] = ordermodels.Order{
			ID:       primitive.NewObjectID(),
			ItemID:   line.ItemID,
			Name:     input.Name,
			Phone:    input.Phone,
			Quantity: line.Quantity,
			Unit:     line.Unit,
		}
	}
	return orders, nil
}

func (f *fakeOrderService) List(ctx context.Context) ([]ordermodels.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderService) UpdateById(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (ordermodels.Order, error) {
	if f.updateErr != nil {
		return ordermodels.Order{}, f.updateErr
	}
	for _, o := range f.orders {
		if o.ID == id {
			if completed, ok := update["completed"].(bool); ok {
				o.Completed = completed
			}
			return o, nil
		}
	}
	return ordermodels.Order{}, common.ErrNotFound
}

func newTestApp(service *fakeOrderService) *fiber.App {
	h := &OrderHandler{service: service}
	app := fiber.New()
	api := app.Group("/api")
	api.Post("/orders", h.Place)
	api.Get("/orders", h.List)
	api.Put("/orders/:id", h.Update)
	return app
}

func TestOrderPlace(t *testing.T) {
	t.Run("Đặt hàng thành công trả về message và orders", func(t *testing.T) {
		service := &fakeOrderService{}
		app := newTestApp(service)

		itemID := primitive.NewObjectID().Hex()
		body := `{"items":[{"itemId":"` + itemID + `","quantity":2,"unit":"plate"}],"name":"Ravi","phone":"9876543210","collectionTime":"7:30 PM","collectionDate":"2025-06-01"}`
		req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var result struct {
			Message string              `json:"message"`
			Orders  []ordermodels.Order `json:"orders"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Order placed successfully", result.Message)
		require.Len(t, result.Orders, 1)
		assert.Equal(t, itemID, result.Orders[0].ItemID)
		require.Len(t, service.placed, 1)
	})

	t.Run("Lỗi nghiệp vụ giữ nguyên status code của lỗi", func(t *testing.T) {
		service := &fakeOrderService{
			placeErr: common.NewError(common.ErrCodeValidationInput, common.MsgItemsRequired, common.StatusBadRequest, nil),
		}
		app := newTestApp(service)

		req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(`{"items":[]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		bodyBytes, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(bodyBytes), "Items array is required")
	})
}

func TestOrderList(t *testing.T) {
	service := &fakeOrderService{orders: []ordermodels.Order{
		{ID: primitive.NewObjectID(), Name: "Ravi", CreatedAt: 200},
		{ID: primitive.NewObjectID(), Name: "Anu", CreatedAt: 100},
	}}
	app := newTestApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var orders []ordermodels.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	assert.Len(t, orders, 2)
}

func TestOrderUpdate(t *testing.T) {
	existing := ordermodels.Order{ID: primitive.NewObjectID(), Name: "Ravi"}

	t.Run("Đánh dấu hoàn thành", func(t *testing.T) {
		service := &fakeOrderService{orders: []ordermodels.Order{existing}}
		app := newTestApp(service)

		req := httptest.NewRequest("PUT", "/api/orders/"+existing.ID.Hex(), strings.NewReader(`{"completed":true}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)

		var order ordermodels.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
		assert.True(t, order.Completed)
	})

	t.Run("Đơn hàng không tồn tại trả về 404", func(t *testing.T) {
		service := &fakeOrderService{}
		app := newTestApp(service)

		req := httptest.NewRequest("PUT", "/api/orders/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"completed":true}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		bodyBytes, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(bodyBytes), "Order not found")
	})

	t.Run("Id sai định dạng trả về 400", func(t *testing.T) {
		app := newTestApp(&fakeOrderService{})

		req := httptest.NewRequest("PUT", "/api/orders/bad-id", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
