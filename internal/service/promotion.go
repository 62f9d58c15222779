package service

import (
	"context"
	"errors"

	"github.com/infenixDeveloper/artegallera-backend/internal/constants"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
	"github.com/infenixDeveloper/artegallera-backend/internal/repository"
)

type PromotionService interface {
	List(ctx context.Context) ([]model.Promotion, error)
	SetStatus(ctx context.Context, id int64, status bool) error
}

type promotion struct {
	promotionRepo repository.PromotionRepository
}

func NewPromotionService(promotionRepo repository.PromotionRepository) PromotionService {
	return &promotion{promotionRepo: promotionRepo}
}

func (s *promotion) List(ctx context.Context) ([]model.Promotion, error) {
	promotions, err := s.promotionRepo.List()
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeDatabase, err)
	}
	return promotions, nil
}

func (s *promotion) SetStatus(ctx context.Context, id int64, status bool) error {
	if err := s.promotionRepo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrPromotionNotFound) {
			return NewServiceError(constants.ErrCodePromotionNotFound, err)
		}
		return NewServiceError(constants.ErrCodeDatabase, err)
	}
	return nil
}
