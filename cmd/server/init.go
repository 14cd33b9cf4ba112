package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"friends_cafe/config"
	authmodels "friends_cafe/internal/api/auth/models"
	menumodels "friends_cafe/internal/api/menu/models"
	ordermodels "friends_cafe/internal/api/order/models"
	ratingmodels "friends_cafe/internal/api/rating/models"
	"friends_cafe/internal/database"
	"friends_cafe/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.MenuItems = "menu_items"
	global.ColNames.Orders = "orders"
	global.ColNames.Admins = "admins"
	global.ColNames.Ratings = "ratings"
	global.ColNames.ShopStatus = "shop_status"

	logrus.Info("Initialized collection names")
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo db và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.MenuItems), menumodels.MenuItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Admins), authmodels.Admin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Ratings), ratingmodels.Rating{})
}
