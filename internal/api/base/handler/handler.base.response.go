package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"friends_cafe/internal/common"
	"friends_cafe/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
// Helper function này đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ UTF-8 encoding đúng cách
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	// Set Content-Type với charset=utf-8 trước khi gọi JSON
	c.Set("Content-Type", "application/json; charset=utf-8")
	// Trả về JSON response
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo rằng server luôn trả về response cho client, kể cả khi có panic xảy ra.
//
// Parameters:
// - c: Fiber context
// - handler: Function xử lý chính của handler
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleError(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgServerError,
				common.StatusInternalServerError,
				fmt.Errorf("panic: %v", r),
			))
		}
	}()
	return handler()
}

// HandleError trả về lỗi cho client theo format thống nhất của API.
// Lỗi nghiệp vụ (*common.Error) giữ nguyên status code và message của nó,
// mọi lỗi khác được trả về 500 kèm chi tiết.
//
// Parameters:
// - c: Fiber context
// - err: Lỗi cần trả về
func (h *BaseHandler) HandleError(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		body := fiber.Map{"message": customErr.Message}
		if customErr.StatusCode >= common.StatusInternalServerError && customErr.Details != nil {
			body["error"] = fmt.Sprintf("%v", customErr.Details)
		}
		JSONResponse(c, customErr.StatusCode, body)
		return
	}

	logger.GetErrorLogger().WithError(err).Error("Unhandled error in request")
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"message": common.MsgServerError,
		"error":   err.Error(),
	})
}
