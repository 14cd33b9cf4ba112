// Package menusvc chứa service data access cho domain menu.
package menusvc

import (
	"fmt"

	basesvc "friends_cafe/internal/api/base/service"
	menumodels "friends_cafe/internal/api/menu/models"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// MenuItemService là service quản lý các món trong thực đơn
type MenuItemService struct {
	*basesvc.BaseServiceMongoImpl[menumodels.MenuItem]
}

// NewMenuItemService tạo mới MenuItemService
func NewMenuItemService() (*MenuItemService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.MenuItems)
	if !exist {
		return nil, fmt.Errorf("failed to get menu_items collection: %v", common.ErrNotFound)
	}

	return &MenuItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[menumodels.MenuItem](collection),
	}, nil
}
