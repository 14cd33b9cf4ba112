// Package notification gửi thông báo đơn hàng cho chủ quán qua WhatsApp (Twilio API).
package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"friends_cafe/config"
	"friends_cafe/internal/logger"
)

// Notifier gửi một thông báo dạng text. Lỗi gửi do caller quyết định xử lý
// (thường chỉ log, không làm thất bại nghiệp vụ chính).
type Notifier interface {
	Send(ctx context.Context, body string) error
}

// WhatsAppSender gửi tin nhắn WhatsApp qua Twilio Messages API
type WhatsAppSender struct {
	accountSID string
	authToken  string
	from       string // Số gửi, dạng whatsapp:+xxx
	to         string // Số nhận, dạng whatsapp:+xxx
	apiBase    string // Base URL của Twilio API, override được trong test
	client     *http.Client
}

// NewWhatsAppSender tạo WhatsAppSender từ cấu hình server
func NewWhatsAppSender(cfg *config.Configuration) *WhatsAppSender {
	return &WhatsAppSender{
		accountSID: cfg.Twilio_AccountSID,
		authToken:  cfg.Twilio_AuthToken,
		from:       cfg.Twilio_WhatsAppFrom,
		to:         cfg.Twilio_WhatsAppTo,
		apiBase:    "https://api.twilio.com",
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send gửi tin nhắn WhatsApp qua Twilio.
// Twilio Messages API nhận form-encoded POST với basic auth (AccountSID/AuthToken).
func (s *WhatsAppSender) Send(ctx context.Context, body string) error {
	log := logger.GetAppLogger()

	// Chưa cấu hình credentials thì tắt kênh thông báo, không coi là lỗi
	if s.accountSID == "" || s.authToken == "" {
		log.Warn("📱 [WHATSAPP] Bỏ qua gửi thông báo: chưa cấu hình Twilio credentials")
		return nil
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.apiBase, s.accountSID)

	form := url.Values{}
	form.Set("From", s.from)
	form.Set("To", s.to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"to": s.to,
		}).Error("📱 [WHATSAPP] Lỗi khi gọi Twilio API")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"to":         s.to,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("📱 [WHATSAPP] Twilio API trả về lỗi")
		return fmt.Errorf("twilio API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	log.WithFields(map[string]interface{}{
		"to": s.to,
	}).Info("📱 [WHATSAPP] Gửi WhatsApp message thành công")
	return nil
}
