// Package ratingsvc chứa service data access cho domain rating.
package ratingsvc

import (
	"fmt"

	basesvc "friends_cafe/internal/api/base/service"
	ratingmodels "friends_cafe/internal/api/rating/models"
	"friends_cafe/internal/common"
	"friends_cafe/internal/global"
)

// RatingService là service quản lý đánh giá của khách
type RatingService struct {
	*basesvc.BaseServiceMongoImpl[ratingmodels.Rating]
}

// NewRatingService tạo mới RatingService
func NewRatingService() (*RatingService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Ratings)
	if !exist {
		return nil, fmt.Errorf("failed to get ratings collection: %v", common.ErrNotFound)
	}

	return &RatingService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ratingmodels.Rating](collection),
	}, nil
}
