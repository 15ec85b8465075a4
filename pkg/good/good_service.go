package good

import (
	"context"
	"errors"
	"strings"

	"daily-shops/domain"
	"daily-shops/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GoodService interface {
		AddGood(ctx context.Context, req domain.AddGoodRequest) (domain.GoodResponse, error)
		GetGoods(ctx context.Context) ([]domain.GoodResponse, error)
		GetGoodByID(ctx context.Context, id string) (domain.GoodResponse, error)
		SearchGoods(ctx context.Context, name string) ([]domain.GoodResponse, error)
		UpdateGood(ctx context.Context, id string, req domain.UpdateGoodRequest) (domain.GoodResponse, error)
		DeleteGood(ctx context.Context, id string) error
	}

	goodService struct {
		goodRepository GoodRepository
	}
)

func NewGoodService(goodRepository GoodRepository) GoodService {
	return &goodService{goodRepository: goodRepository}
}

func (s *goodService) AddGood(ctx context.Context, req domain.AddGoodRequest) (domain.GoodResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.GoodResponse{}, domain.ErrEmptyGoodName
	}

	// Defensive check only; uniqueness is not enforced at the data layer.
	exists, err := s.goodRepository.ExistsByName(ctx, name)
	if err != nil {
		return domain.GoodResponse{}, err
	}
	if exists {
		return domain.GoodResponse{}, domain.ErrGoodAlreadyExists
	}

	good := &entities.Good{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.goodRepository.AddGood(ctx, good); err != nil {
		return domain.GoodResponse{}, err
	}

	return toGoodResponse(good), nil
}

func (s *goodService) GetGoods(ctx context.Context) ([]domain.GoodResponse, error) {
	goods, err := s.goodRepository.GetGoods(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GoodResponse, 0, len(goods))
	for _, good := range goods {
		response = append(response, toGoodResponse(good))
	}
	return response, nil
}

func (s *goodService) GetGoodByID(ctx context.Context, id string) (domain.GoodResponse, error) {
	good, err := s.goodRepository.GetGoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoodResponse{}, domain.ErrGoodNotFound
		}
		return domain.GoodResponse{}, err
	}
	return toGoodResponse(good), nil
}

func (s *goodService) SearchGoods(ctx context.Context, name string) ([]domain.GoodResponse, error) {
	goods, err := s.goodRepository.SearchGoodsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	response := make([]domain.GoodResponse, 0, len(goods))
	for _, good := range goods {
		response = append(response, toGoodResponse(good))
	}
	return response, nil
}

func (s *goodService) UpdateGood(ctx context.Context, id string, req domain.UpdateGoodRequest) (domain.GoodResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.GoodResponse{}, domain.ErrEmptyGoodName
	}

	good, err := s.goodRepository.GetGoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GoodResponse{}, domain.ErrGoodNotFound
		}
		return domain.GoodResponse{}, err
	}

	good.Name = name
	if err := s.goodRepository.UpdateGood(ctx, good); err != nil {
		return domain.GoodResponse{}, err
	}
	return toGoodResponse(good), nil
}

func (s *goodService) DeleteGood(ctx context.Context, id string) error {
	if _, err := s.goodRepository.GetGoodByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGoodNotFound
		}
		return err
	}
	return s.goodRepository.DeleteGood(ctx, id)
}

func toGoodResponse(good *entities.Good) domain.GoodResponse {
	return domain.GoodResponse{
		ID:        good.ID.String(),
		Name:      good.Name,
		CreatedAt: good.CreatedAt,
		UpdatedAt: good.UpdatedAt,
	}
}
