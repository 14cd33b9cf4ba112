// Package authhdl chứa HTTP handler cho đăng nhập quản trị viên.
package authhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "friends_cafe/internal/api/auth/dto"
	authsvc "friends_cafe/internal/api/auth/service"
	basehdl "friends_cafe/internal/api/base/handler"
	"friends_cafe/internal/common"
	"friends_cafe/internal/logger"
)

// authService là phần interface của AdminService mà handler sử dụng
type authService interface {
	Login(ctx context.Context, username string, password string) (bool, error)
}

// AuthHandler xử lý các request đăng nhập của quản trị viên
type AuthHandler struct {
	basehdl.BaseHandler
	service authService
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}

	return &AuthHandler{
		service: adminService,
	}, nil
}

// Login so khớp thông tin đăng nhập, luôn trả về 200 trừ khi truy vấn lỗi
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			// Body hỏng hoặc thiếu trường coi như đăng nhập thất bại
			return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
				"success": false,
				"message": common.MsgInvalidCredentials,
			})
		}

		ok, err := h.service.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			logger.GetErrorLogger().WithError(err).Error("Admin login query failed")
			return basehdl.JSONResponse(c, common.StatusInternalServerError, fiber.Map{
				"success": false,
				"message": common.MsgServerError,
				"error":   fmt.Sprintf("%v", err),
			})
		}

		if !ok {
			return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
				"success": false,
				"message": common.MsgInvalidCredentials,
			})
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{"success": true})
	})
}
