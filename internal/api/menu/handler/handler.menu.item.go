// Package menuhdl chứa HTTP handler cho domain menu.
package menuhdl

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "friends_cafe/internal/api/base/handler"
	menudto "friends_cafe/internal/api/menu/dto"
	menumodels "friends_cafe/internal/api/menu/models"
	menusvc "friends_cafe/internal/api/menu/service"
	"friends_cafe/internal/common"
	"friends_cafe/internal/logger"
	"friends_cafe/internal/media"
	"friends_cafe/internal/utility"
)

// menuItemService là phần interface của MenuItemService mà handler sử dụng
type menuItemService interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]menumodels.MenuItem, error)
	InsertOne(ctx context.Context, data menumodels.MenuItem) (menumodels.MenuItem, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (menumodels.MenuItem, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (menumodels.MenuItem, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
}

// imageStorage là phần interface của media.LocalStorage mà handler sử dụng
type imageStorage interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(name string)
}

// MenuItemHandler xử lý các request liên quan đến thực đơn
type MenuItemHandler struct {
	basehdl.BaseHandler
	service menuItemService
	storage imageStorage
}

// NewMenuItemHandler tạo mới MenuItemHandler
func NewMenuItemHandler(storage *media.LocalStorage) (*MenuItemHandler, error) {
	menuItemService, err := menusvc.NewMenuItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item service: %v", err)
	}

	return &MenuItemHandler{
		service: menuItemService,
		storage: storage,
	}, nil
}

// List trả về toàn bộ thực đơn
func (h *MenuItemHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		items, err := h.service.Find(c.Context(), nil, nil)
		if err != nil {
			h.HandleError(c, err)
			return nil
		}
		return basehdl.JSONResponse(c, common.StatusOK, items)
	})
}

// Create thêm món mới vào thực đơn từ multipart form, kèm ảnh tùy chọn
func (h *MenuItemHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := menudto.MenuItemCreateInput{
			Name:        c.FormValue("name"),
			Price:       c.FormValue("price"),
			Unit:        c.FormValue("unit"),
			Available:   c.FormValue("available"),
			Category:    c.FormValue("category"),
			Description: c.FormValue("description"),
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Name is required", common.StatusBadRequest, err))
			return nil
		}

		price := float64(0)
		if input.Price != "" {
			parsed, err := strconv.ParseFloat(input.Price, 64)
			if err != nil {
				h.HandleError(c, common.NewError(common.ErrCodeValidationInput, "Invalid price", common.StatusBadRequest, err))
				return nil
			}
			price = parsed
		}

		// Ảnh là tùy chọn: không có file thì image để rỗng
		image := ""
		if file, err := c.FormFile("image"); err == nil && file != nil {
			name, saveErr := h.storage.Save(file)
			if saveErr != nil {
				h.HandleError(c, saveErr)
				return nil
			}
			image = "/Uploads/" + name
		}

		item := menumodels.MenuItem{
			Name:        input.Name,
			Price:       price,
			Image:       image,
			Unit:        input.Unit,
			Available:   input.Available == "true",
			Category:    input.Category,
			Description: input.Description,
		}

		created, err := h.service.InsertOne(c.Context(), item)
		if err != nil {
			// Insert thất bại thì dọn luôn file ảnh vừa lưu
			if image != "" {
				h.storage.Remove(strings.TrimPrefix(image, "/Uploads/"))
			}
			h.HandleError(c, err)
			return nil
		}

		logger.GetAppLogger().WithField("itemId", utility.ObjectID2String(created.ID)).Info("Saved menu item")
		return basehdl.JSONResponse(c, common.StatusOK, created)
	})
}

// Update cập nhật một món theo id, chỉ các trường có mặt trong body được thay đổi
func (h *MenuItemHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Invalid item id: %s", id), common.StatusBadRequest, nil))
			return nil
		}

		var input menudto.MenuItemUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleError(c, err)
			return nil
		}

		objID := utility.String2ObjectID(id)
		updated, err := h.service.UpdateById(c.Context(), objID, input.ToUpdateMap())
		if err != nil {
			if common.IsNotFound(err) {
				h.HandleError(c, common.NewError(common.ErrCodeDatabaseQuery, common.MsgItemNotFound, common.StatusNotFound, nil))
				return nil
			}
			h.HandleError(c, err)
			return nil
		}

		return basehdl.JSONResponse(c, common.StatusOK, updated)
	})
}

// Delete xóa một món theo id và dọn file ảnh kèm theo
func (h *MenuItemHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleError(c, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Invalid item id: %s", id), common.StatusBadRequest, nil))
			return nil
		}

		objID := utility.String2ObjectID(id)
		item, err := h.service.FindOneById(c.Context(), objID)
		if err != nil {
			if common.IsNotFound(err) {
				h.HandleError(c, common.NewError(common.ErrCodeDatabaseQuery, common.MsgItemNotFound, common.StatusNotFound, nil))
				return nil
			}
			h.HandleError(c, err)
			return nil
		}

		if err := h.service.DeleteById(c.Context(), objID); err != nil {
			h.HandleError(c, err)
			return nil
		}

		// Dọn ảnh best-effort sau khi xóa document
		if item.Image != "" {
			h.storage.Remove(strings.TrimPrefix(item.Image, "/Uploads/"))
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{"message": common.MsgItemDeleted})
	})
}
