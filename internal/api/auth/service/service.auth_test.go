package authsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "friends_cafe/internal/api/auth/models"
	"friends_cafe/internal/common"
)

// fakeAdminStore giả lập collection admin trong test
type fakeAdminStore struct {
	admins []authmodels.Admin
}

func (f *fakeAdminStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (authmodels.Admin, error) {
	m := filter.(bson.M)
	for _, admin := range f.admins {
		if admin.Username == m["username"] {
			if password, ok := m["password"]; !ok || admin.Password == password {
				return admin, nil
			}
		}
	}
	return authmodels.Admin{}, common.ErrNotFound
}

func (f *fakeAdminStore) InsertOne(ctx context.Context, data authmodels.Admin) (authmodels.Admin, error) {
	f.admins = append(f.admins, data)
	return data, nil
}

func (f *fakeAdminStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	m := filter.(bson.M)
	for _, admin := range f.admins {
		if admin.Username == m["username"] {
			return true, nil
		}
	}
	return false, nil
}

func TestAdminLogin(t *testing.T) {
	store := &fakeAdminStore{admins: []authmodels.Admin{
		{Username: "aahil", Password: "aahil1234"},
	}}
	svc := &AdminService{admins: store}

	t.Run("Đúng thông tin trả về true", func(t *testing.T) {
		ok, err := svc.Login(context.Background(), "aahil", "aahil1234")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Sai mật khẩu trả về false không lỗi", func(t *testing.T) {
		ok, err := svc.Login(context.Background(), "aahil", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Username không tồn tại trả về false không lỗi", func(t *testing.T) {
		ok, err := svc.Login(context.Background(), "nobody", "aahil1234")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEnsureAdmin(t *testing.T) {
	store := &fakeAdminStore{}
	svc := &AdminService{admins: store}

	t.Run("Tạo mới khi chưa tồn tại", func(t *testing.T) {
		created, err := svc.EnsureAdmin(context.Background(), "aahil", "aahil1234")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, store.admins, 1)
	})

	t.Run("Lần gọi thứ hai không tạo thêm", func(t *testing.T) {
		created, err := svc.EnsureAdmin(context.Background(), "aahil", "aahil1234")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Len(t, store.admins, 1)
	})
}
