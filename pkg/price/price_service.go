package price

import (
	"context"
	"errors"

	"daily-shops/domain"
	"daily-shops/entities"
	"daily-shops/pkg/good"
	"daily-shops/pkg/shop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCurrency = "USD"

type (
	PriceService interface {
		SetPrice(ctx context.Context, req domain.SetPriceRequest) (domain.PriceResponse, error)
		GetPriceByID(ctx context.Context, id string) (domain.PriceResponse, error)
		GetPriceByGoodAndShop(ctx context.Context, goodID, shopID string) (domain.PriceResponse, error)
		GetPrices(ctx context.Context) ([]domain.PriceResponse, error)
		GetPricesByGood(ctx context.Context, goodID string) ([]domain.PriceResponse, error)
		GetPricesByShop(ctx context.Context, shopID string) ([]domain.PriceResponse, error)
		GetCheapestPrice(ctx context.Context, goodID string) (domain.PriceResponse, error)
		GetMostExpensivePrice(ctx context.Context, goodID string) (domain.PriceResponse, error)
		GetPricesInRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.PriceResponse, error)
		GetPricesByCurrency(ctx context.Context, currency string) ([]domain.PriceResponse, error)
		SearchPricesByGoodName(ctx context.Context, goodName string) ([]domain.PriceResponse, error)
		SearchPricesByShopName(ctx context.Context, shopName string) ([]domain.PriceResponse, error)
		DeletePriceByID(ctx context.Context, id string) error
		DeletePriceByGoodAndShop(ctx context.Context, goodID, shopID string) error
	}

	priceService struct {
		priceRepository PriceRepository
		goodRepository  good.GoodRepository
		shopRepository  shop.ShopRepository
	}
)

func NewPriceService(
	priceRepository PriceRepository,
	goodRepository good.GoodRepository,
	shopRepository shop.ShopRepository,
) PriceService {
	return &priceService{
		priceRepository: priceRepository,
		goodRepository:  goodRepository,
		shopRepository:  shopRepository,
	}
}

// SetPrice upserts the single price record for a (good, shop) pair. An
// existing record keeps its id and created-at; only amount, currency and
// updated-at change. A new record is created only when both referenced
// entities exist.
func (s *priceService) SetPrice(ctx context.Context, req domain.SetPriceRequest) (domain.PriceResponse, error) {
	if req.Price <= 0 {
		return domain.PriceResponse{}, domain.ErrInvalidPrice
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	existing, err := s.priceRepository.GetPriceByGoodAndShop(ctx, req.GoodID, req.ShopID)
	if err == nil {
		existing.Price = req.Price
		existing.Currency = currency
		if err := s.priceRepository.UpdatePrice(ctx, existing); err != nil {
			return domain.PriceResponse{}, err
		}
		return toPriceResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PriceResponse{}, err
	}

	goodEntity, err := s.goodRepository.GetGoodByID(ctx, req.GoodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PriceResponse{}, domain.ErrGoodOrShopNotFound
		}
		return domain.PriceResponse{}, err
	}

	shopEntity, err := s.shopRepository.GetShopByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PriceResponse{}, domain.ErrGoodOrShopNotFound
		}
		return domain.PriceResponse{}, err
	}

	price := &entities.GoodsPrice{
		ID:       uuid.New(),
		GoodID:   goodEntity.ID,
		ShopID:   shopEntity.ID,
		Price:    req.Price,
		Currency: currency,
		Good:     goodEntity,
		Shop:     shopEntity,
	}

	if err := s.priceRepository.CreatePrice(ctx, price); err != nil {
		return domain.PriceResponse{}, err
	}
	return toPriceResponse(price), nil
}

func (s *priceService) GetPriceByID(ctx context.Context, id string) (domain.PriceResponse, error) {
	price, err := s.priceRepository.GetPriceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PriceResponse{}, domain.ErrPriceNotFound
		}
		return domain.PriceResponse{}, err
	}
	return toPriceResponse(price), nil
}

func (s *priceService) GetPriceByGoodAndShop(ctx context.Context, goodID, shopID string) (domain.PriceResponse, error) {
	price, err := s.priceRepository.GetPriceByGoodAndShop(ctx, goodID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PriceResponse{}, domain.ErrPriceNotFound
		}
		return domain.PriceResponse{}, err
	}
	return toPriceResponse(price), nil
}

func (s *priceService) GetPrices(ctx context.Context) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPrices(ctx)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) GetPricesByGood(ctx context.Context, goodID string) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPricesByGood(ctx, goodID)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) GetPricesByShop(ctx context.Context, shopID string) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPricesByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) GetCheapestPrice(ctx context.Context, goodID string) (domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPricesByGoodOrdered(ctx, goodID, true)
	if err != nil {
		return domain.PriceResponse{}, err
	}
	if len(prices) == 0 {
		return domain.PriceResponse{}, domain.ErrPriceNotFound
	}
	return toPriceResponse(prices[0]), nil
}

func (s *priceService) GetMostExpensivePrice(ctx context.Context, goodID string) (domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPricesByGoodOrdered(ctx, goodID, false)
	if err != nil {
		return domain.PriceResponse{}, err
	}
	if len(prices) == 0 {
		return domain.PriceResponse{}, domain.ErrPriceNotFound
	}
	return toPriceResponse(prices[0]), nil
}

func (s *priceService) GetPricesInRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.PriceResponse, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, domain.ErrInvalidPriceRange
	}

	prices, err := s.priceRepository.GetPricesInRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) GetPricesByCurrency(ctx context.Context, currency string) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.GetPricesByCurrency(ctx, currency)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) SearchPricesByGoodName(ctx context.Context, goodName string) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.SearchPricesByGoodName(ctx, goodName)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) SearchPricesByShopName(ctx context.Context, shopName string) ([]domain.PriceResponse, error) {
	prices, err := s.priceRepository.SearchPricesByShopName(ctx, shopName)
	if err != nil {
		return nil, err
	}
	return toPriceResponses(prices), nil
}

func (s *priceService) DeletePriceByID(ctx context.Context, id string) error {
	if _, err := s.priceRepository.GetPriceByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPriceNotFound
		}
		return err
	}
	return s.priceRepository.DeletePrice(ctx, id)
}

// DeletePriceByGoodAndShop removes the record for the pair if one
// exists; a missing pair is a no-op.
func (s *priceService) DeletePriceByGoodAndShop(ctx context.Context, goodID, shopID string) error {
	price, err := s.priceRepository.GetPriceByGoodAndShop(ctx, goodID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.priceRepository.DeletePrice(ctx, price.ID.String())
}

func toPriceResponse(price *entities.GoodsPrice) domain.PriceResponse {
	response := domain.PriceResponse{
		ID:        price.ID.String(),
		GoodID:    price.GoodID.String(),
		ShopID:    price.ShopID.String(),
		Price:     price.Price,
		Currency:  price.Currency,
		CreatedAt: price.CreatedAt,
		UpdatedAt: price.UpdatedAt,
	}
	if price.Good != nil {
		response.GoodName = price.Good.Name
	}
	if price.Shop != nil {
		response.ShopName = price.Shop.Name
	}
	return response
}

func toPriceResponses(prices []*entities.GoodsPrice) []domain.PriceResponse {
	response := make([]domain.PriceResponse, 0, len(prices))
	for _, price := range prices {
		response = append(response, toPriceResponse(price))
	}
	return response
}
