package notification

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friends_cafe/config"
)

func newTestSender(apiBase string) *WhatsAppSender {
	sender := NewWhatsAppSender(&config.Configuration{
		Twilio_AccountSID:   "AC_test_sid",
		Twilio_AuthToken:    "test_token",
		Twilio_WhatsAppFrom: "whatsapp:+14155238886",
		Twilio_WhatsAppTo:   "whatsapp:+919440733910",
	})
	sender.apiBase = apiBase
	sender.client = &http.Client{Timeout: 2 * time.Second}
	return sender
}

func TestWhatsAppSenderSend(t *testing.T) {
	t.Run("Gửi thành công với form và basic auth đúng", func(t *testing.T) {
		var gotPath string
		var gotForm url.Values
		var gotUser, gotPass string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			body, _ := io.ReadAll(r.Body)
			gotForm, _ = url.ParseQuery(string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"sid":"SM123"}`))
		}))
		defer server.Close()

		sender := newTestSender(server.URL)
		err := sender.Send(context.Background(), "New Order!\n\nItem: Biryani x2")
		require.NoError(t, err)

		assert.Equal(t, "/2010-04-01/Accounts/AC_test_sid/Messages.json", gotPath)
		assert.Equal(t, "AC_test_sid", gotUser)
		assert.Equal(t, "test_token", gotPass)
		assert.Equal(t, "whatsapp:+14155238886", gotForm.Get("From"))
		assert.Equal(t, "whatsapp:+919440733910", gotForm.Get("To"))
		assert.Contains(t, gotForm.Get("Body"), "Biryani x2")
	})

	t.Run("Twilio trả về lỗi thì Send trả về error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":20003,"message":"Authentication Error"}`))
		}))
		defer server.Close()

		sender := newTestSender(server.URL)
		err := sender.Send(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Thiếu credentials thì bỏ qua, không gọi API và không lỗi", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		sender := NewWhatsAppSender(&config.Configuration{})
		sender.apiBase = server.URL

		err := sender.Send(context.Background(), "hello")
		require.NoError(t, err)
		assert.False(t, called)
	})
}
