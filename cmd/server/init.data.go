package main

import (
	"context"
	"time"

	"friends_cafe/internal/api/initsvc"
	"friends_cafe/internal/logger"
)

// InitDefaultData seed dữ liệu mặc định: tài khoản admin và trạng thái cửa hàng
func InitDefaultData() {
	log := logger.GetAppLogger()

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := initService.InitAdminAccount(ctx); err != nil {
		log.Fatalf("Failed to initialize admin account: %v", err)
	}

	if err := initService.InitShopStatus(ctx); err != nil {
		log.Fatalf("Failed to initialize shop status: %v", err)
	}

	log.Info("Default data initialized")
}
