package shop

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
	ShopService interface {
		AddShop(ctx context.Context, req domain.AddShopRequest) (domain.ShopResponse, error)
		GetShops(ctx context.Context) ([]domain.ShopResponse, error)
		GetShopByID(ctx context.Context, id string) (domain.ShopResponse, error)
		SearchShops(ctx context.Context, name string) ([]domain.ShopResponse, error)
		UpdateShop(ctx context.Context, id string, req domain.UpdateShopRequest) (domain.ShopResponse, error)
		DeleteShop(ctx context.Context, id string) error
	}

	shopService struct {
		shopRepository ShopRepository
	}
)

func NewShopService(shopRepository ShopRepository) ShopService {
	return &shopService{shopRepository: shopRepository}
}

func (s *shopService) AddShop(ctx context.Context, req domain.AddShopRequest) (domain.ShopResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShopResponse{}, domain.ErrEmptyShopName
	}

	// Defensive check only; uniqueness is not enforced at the data layer.
	exists, err := s.shopRepository.ExistsByName(ctx, name)
	if err != nil {
		return domain.ShopResponse{}, err
	}
	if exists {
		return domain.ShopResponse{}, domain.ErrShopAlreadyExists
	}

	shop := &entities.Shop{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.shopRepository.AddShop(ctx, shop); err != nil {
		return domain.ShopResponse{}, err
	}

	return toShopResponse(shop), nil
}

func (s *shopService) GetShops(ctx context.Context) ([]domain.ShopResponse, error) {
	shops, err := s.shopRepository.GetShops(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		response = append(response, toShopResponse(shop))
	}
	return response, nil
}

func (s *shopService) GetShopByID(ctx context.Context, id string) (domain.ShopResponse, error) {
	shop, err := s.shopRepository.GetShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShopResponse{}, domain.ErrShopNotFound
		}
		return domain.ShopResponse{}, err
	}
	return toShopResponse(shop), nil
}

func (s *shopService) SearchShops(ctx context.Context, name string) ([]domain.ShopResponse, error) {
	shops, err := s.shopRepository.SearchShopsByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		response = append(response, toShopResponse(shop))
	}
	return response, nil
}

func (s *shopService) UpdateShop(ctx context.Context, id string, req domain.UpdateShopRequest) (domain.ShopResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShopResponse{}, domain.ErrEmptyShopName
	}

	shop, err := s.shopRepository.GetShopByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShopResponse{}, domain.ErrShopNotFound
		}
		return domain.ShopResponse{}, err
	}

	shop.Name = name
	if err := s.shopRepository.UpdateShop(ctx, shop); err != nil {
		return domain.ShopResponse{}, err
	}
	return toShopResponse(shop), nil
}

func (s *shopService) DeleteShop(ctx context.Context, id string) error {
	if _, err := s.shopRepository.GetShopByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShopNotFound
		}
		return err
	}
	return s.shopRepository.DeleteShop(ctx, id)
}

func toShopResponse(shop *entities.Shop) domain.ShopResponse {
	return domain.ShopResponse{
		ID:        shop.ID.String(),
		Name:      shop.Name,
		CreatedAt: shop.CreatedAt,
		UpdatedAt: shop.UpdatedAt,
	}
}
