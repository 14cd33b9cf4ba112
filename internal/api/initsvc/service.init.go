// Package initsvc khởi tạo dữ liệu mặc định cho hệ thống lúc boot.
package initsvc

import (
	"context"
	"fmt"

	authsvc "friends_cafe/internal/api/auth/service"
	shopsvc "friends_cafe/internal/api/shop/service"
	"friends_cafe/internal/global"
	"friends_cafe/internal/logger"
)

// InitService gom các bước seed dữ liệu mặc định
type InitService struct {
	admin *authsvc.AdminService
	shop  *shopsvc.ShopStatusService
}

// NewInitService tạo mới InitService
func NewInitService() (*InitService, error) {
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}

	shopService, err := shopsvc.NewShopStatusService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shop status service: %v", err)
	}

	return &InitService{
		admin: adminService,
		shop:  shopService,
	}, nil
}

// InitAdminAccount tạo tài khoản admin mặc định nếu chưa tồn tại
func (s *InitService) InitAdminAccount(ctx context.Context) error {
	cfg := global.ServerConfig
	created, err := s.admin.EnsureAdmin(ctx, cfg.Admin_Username, cfg.Admin_Password)
	if err != nil {
		return err
	}

	log := logger.GetAppLogger()
	if created {
		log.Infof("Admin account created: %s", cfg.Admin_Username)
	} else {
		log.Info("Admin account already exists")
	}
	return nil
}

// InitShopStatus đảm bảo document trạng thái cửa hàng tồn tại
func (s *InitService) InitShopStatus(ctx context.Context) error {
	status, err := s.shop.GetOrCreateDefault(ctx)
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"isOpen":          status.IsOpen,
		"acceptingOrders": status.AcceptingOrders,
	}).Info("Shop status ready")
	return nil
}
