package global

import (
	"friends_cafe/config"
	"friends_cafe/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	MenuItems  string // Tên collection cho món trong thực đơn
	Orders     string // Tên collection cho đơn hàng
	Admins     string // Tên collection cho tài khoản quản trị
	Ratings    string // Tên collection cho đánh giá
	ShopStatus string // Tên collection cho trạng thái cửa hàng
}

// Các biến toàn cục
var Validate *validator.Validate            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration      // Cấu hình của server
var ColNames = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
