package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Tất cả handle process-wide (kết nối Mongo, client Twilio) được khởi tạo
// một lần lúc boot từ cấu hình này và truyền vào các service.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":5000"`              // Địa chỉ server
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`         // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"friendscafe"` // Tên cơ sở dữ liệu

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)

	// Media storage - thư mục lưu ảnh món ăn, serve tĩnh qua /Uploads
	UploadsDir string `env:"UPLOADS_DIR" envDefault:"Uploads"` // Thư mục lưu file upload

	// Twilio WhatsApp - kênh thông báo đơn hàng mới cho nhân viên
	Twilio_AccountSID   string `env:"TWILIO_ACCOUNT_SID"`                                    // Account SID của Twilio
	Twilio_AuthToken    string `env:"TWILIO_AUTH_TOKEN"`                                     // Auth token của Twilio
	Twilio_WhatsAppFrom string `env:"TWILIO_WHATSAPP_FROM" envDefault:"whatsapp:+14155238886"` // Số gửi WhatsApp
	Twilio_WhatsAppTo   string `env:"TWILIO_WHATSAPP_TO" envDefault:"whatsapp:+919440733910"`  // Số nhận WhatsApp (nhân viên shop)

	// Seed data - tài khoản admin mặc định, tạo một lần lúc boot nếu chưa có
	Admin_Username string `env:"ADMIN_USERNAME" envDefault:"aahil"`     // Username admin seed
	Admin_Password string `env:"ADMIN_PASSWORD" envDefault:"aahil1234"` // Password admin seed
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		// File env là tùy chọn: cho phép chạy thuần bằng environment variables
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
