package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers = make(map[string]*logrus.Logger)
	mu      sync.Mutex
	config  *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình cho trước.
// Gọi một lần lúc startup, trước khi lấy bất kỳ logger nào.
func Init(cfg *LogConfig) {
	mu.Lock()
	defer mu.Unlock()
	config = cfg
}

// GetLogger trả về logger theo tên, tạo mới nếu chưa có.
// Mỗi tên (app, error, ...) ghi ra file riêng khi output là file/both.
func GetLogger(name string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	cfg := config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.SetOutput(buildOutput(cfg, name))

	loggers[name] = l
	return l
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger trả về logger dành riêng cho lỗi
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}

// buildOutput dựng writer theo cấu hình: stdout, file (có rotation) hoặc cả hai
func buildOutput(cfg *LogConfig, name string) io.Writer {
	switch cfg.Output {
	case "file":
		return fileWriter(cfg, name)
	case "both":
		return io.MultiWriter(os.Stdout, fileWriter(cfg, name))
	default:
		return os.Stdout
	}
}

func fileWriter(cfg *LogConfig, name string) io.Writer {
	filename := cfg.AppFile
	if name == "error" {
		filename = cfg.ErrorFile
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogPath, filename),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
