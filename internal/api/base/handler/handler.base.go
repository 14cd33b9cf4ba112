// Package basehdl cung cấp các tiện ích chung để xử lý request/response cho các handler.
package basehdl

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// BaseHandler chứa các phương thức chung cho các handler domain
type BaseHandler struct{}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Invalid request body", common.StatusBadRequest, err)
	}

	return nil
}

// ValidateInput thực hiện validate dữ liệu đầu vào theo struct tag
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
	}
	return nil
}
