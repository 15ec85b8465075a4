package price

import (
	"context"
	"sort"
	"testing"

	"daily-shops/domain"
	"daily-shops/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePriceRepository struct {
	prices []*entities.GoodsPrice
}

func (r *fakePriceRepository) CreatePrice(_ context.Context, price *entities.GoodsPrice) error {
	copied := *price
	r.prices = append(r.prices, &copied)
	return nil
}

func (r *fakePriceRepository) UpdatePrice(_ context.Context, price *entities.GoodsPrice) error {
	for i, existing := range r.prices {
		if existing.ID == price.ID {
			copied := *price
			r.prices[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePriceRepository) GetPriceByID(_ context.Context, id string) (*entities.GoodsPrice, error) {
	for _, price := range r.prices {
		if price.ID.String() == id {
			copied := *price
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePriceRepository) GetPriceByGoodAndShop(_ context.Context, goodID, shopID string) (*entities.GoodsPrice, error) {
	for _, price := range r.prices {
		if price.GoodID.String() == goodID && price.ShopID.String() == shopID {
			copied := *price
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePriceRepository) GetPrices(_ context.Context) ([]*entities.GoodsPrice, error) {
	return r.prices, nil
}

func (r *fakePriceRepository) GetPricesByGood(_ context.Context, goodID string) ([]*entities.GoodsPrice, error) {
	return r.filterByGood(goodID), nil
}

func (r *fakePriceRepository) GetPricesByShop(_ context.Context, shopID string) ([]*entities.GoodsPrice, error) {
	var out []*entities.GoodsPrice
	for _, price := range r.prices {
		if price.ShopID.String() == shopID {
			out = append(out, price)
		}
	}
	return out, nil
}

func (r *fakePriceRepository) GetPricesByGoodOrdered(_ context.Context, goodID string, ascending bool) ([]*entities.GoodsPrice, error) {
	out := r.filterByGood(goodID)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Price < out[j].Price
		}
		return out[i].Price > out[j].Price
	})
	return out, nil
}

func (r *fakePriceRepository) GetPricesInRange(_ context.Context, minPrice, maxPrice float64) ([]*entities.GoodsPrice, error) {
	var out []*entities.GoodsPrice
	for _, price := range r.prices {
		if price.Price >= minPrice && price.Price <= maxPrice {
			out = append(out, price)
		}
	}
	return out, nil
}

func (r *fakePriceRepository) GetPricesByCurrency(_ context.Context, currency string) ([]*entities.GoodsPrice, error) {
	var out []*entities.GoodsPrice
	for _, price := range r.prices {
		if price.Currency == currency {
			out = append(out, price)
		}
	}
	return out, nil
}

func (r *fakePriceRepository) SearchPricesByGoodName(_ context.Context, _ string) ([]*entities.GoodsPrice, error) {
	return nil, nil
}

func (r *fakePriceRepository) SearchPricesByShopName(_ context.Context, _ string) ([]*entities.GoodsPrice, error) {
	return nil, nil
}

func (r *fakePriceRepository) DeletePrice(_ context.Context, id string) error {
	for i, price := range r.prices {
		if price.ID.String() == id {
			r.prices = append(r.prices[:i], r.prices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePriceRepository) filterByGood(goodID string) []*entities.GoodsPrice {
	var out []*entities.GoodsPrice
	for _, price := range r.prices {
		if price.GoodID.String() == goodID {
			out = append(out, price)
		}
	}
	return out
}

type fakeGoodRepository struct {
	goods map[string]*entities.Good
}

func (r *fakeGoodRepository) AddGood(_ context.Context, good *entities.Good) error {
	r.goods[good.ID.String()] = good
	return nil
}

func (r *fakeGoodRepository) GetGoodByID(_ context.Context, id string) (*entities.Good, error) {
	if good, ok := r.goods[id]; ok {
		return good, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGoodRepository) GetGoods(_ context.Context) ([]*entities.Good, error) { return nil, nil }

func (r *fakeGoodRepository) SearchGoodsByName(_ context.Context, _ string) ([]*entities.Good, error) {
	return nil, nil
}

func (r *fakeGoodRepository) ExistsByName(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeGoodRepository) UpdateGood(_ context.Context, _ *entities.Good) error { return nil }

func (r *fakeGoodRepository) DeleteGood(_ context.Context, _ string) error { return nil }

type fakeShopRepository struct {
	shops map[string]*entities.Shop
}

func (r *fakeShopRepository) AddShop(_ context.Context, shop *entities.Shop) error {
	r.shops[shop.ID.String()] = shop
	return nil
}

func (r *fakeShopRepository) GetShopByID(_ context.Context, id string) (*entities.Shop, error) {
	if shop, ok := r.shops[id]; ok {
		return shop, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepository) GetShops(_ context.Context) ([]*entities.Shop, error) { return nil, nil }

func (r *fakeShopRepository) SearchShopsByName(_ context.Context, _ string) ([]*entities.Shop, error) {
	return nil, nil
}

func (r *fakeShopRepository) ExistsByName(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeShopRepository) UpdateShop(_ context.Context, _ *entities.Shop) error { return nil }

func (r *fakeShopRepository) DeleteShop(_ context.Context, _ string) error { return nil }

func newTestService() (PriceService, *fakePriceRepository, *entities.Good, []*entities.Shop) {
	priceRepo := &fakePriceRepository{}
	goodRepo := &fakeGoodRepository{goods: map[string]*entities.Good{}}
	shopRepo := &fakeShopRepository{shops: map[string]*entities.Shop{}}

	g := &entities.Good{ID: uuid.New(), Name: "G1"}
	shopA := &entities.Shop{ID: uuid.New(), Name: "ShopA"}
	shopB := &entities.Shop{ID: uuid.New(), Name: "ShopB"}
	goodRepo.goods[g.ID.String()] = g
	shopRepo.shops[shopA.ID.String()] = shopA
	shopRepo.shops[shopB.ID.String()] = shopB

	service := NewPriceService(priceRepo, goodRepo, shopRepo)
	return service, priceRepo, g, []*entities.Shop{shopA, shopB}
}

func TestSetPriceUpsertKeepsIdentity(t *testing.T) {
	service, repo, g, shops := newTestService()
	ctx := context.Background()

	first, err := service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[0].ID.String(),
		Price:  10.00,
	})
	require.NoError(t, err)

	second, err := service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID:   g.ID.String(),
		ShopID:   shops[0].ID.String(),
		Price:    12.50,
		Currency: "EUR",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 12.50, second.Price)
	assert.Equal(t, "EUR", second.Currency)
	assert.Len(t, repo.prices, 1)
}

func TestSetPriceUnknownReferences(t *testing.T) {
	service, repo, g, shops := newTestService()
	ctx := context.Background()

	_, err := service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: uuid.NewString(),
		ShopID: shops[0].ID.String(),
		Price:  5.00,
	})
	assert.ErrorIs(t, err, domain.ErrGoodOrShopNotFound)

	_, err = service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: uuid.NewString(),
		Price:  5.00,
	})
	assert.ErrorIs(t, err, domain.ErrGoodOrShopNotFound)

	assert.Empty(t, repo.prices)
}

func TestSetPriceRejectsNonPositiveAmount(t *testing.T) {
	service, repo, g, shops := newTestService()

	_, err := service.SetPrice(context.Background(), domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[0].ID.String(),
		Price:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	assert.Empty(t, repo.prices)
}

func TestSetPriceDefaultsCurrency(t *testing.T) {
	service, _, g, shops := newTestService()

	res, err := service.SetPrice(context.Background(), domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[0].ID.String(),
		Price:  3.25,
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, res.Currency)
}

func TestCheapestAndMostExpensive(t *testing.T) {
	service, _, g, shops := newTestService()
	ctx := context.Background()

	_, err := service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[0].ID.String(),
		Price:  10.00,
	})
	require.NoError(t, err)

	_, err = service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[1].ID.String(),
		Price:  7.50,
	})
	require.NoError(t, err)

	cheapest, err := service.GetCheapestPrice(ctx, g.ID.String())
	require.NoError(t, err)
	assert.Equal(t, shops[1].ID.String(), cheapest.ShopID)
	assert.Equal(t, 7.50, cheapest.Price)

	mostExpensive, err := service.GetMostExpensivePrice(ctx, g.ID.String())
	require.NoError(t, err)
	assert.Equal(t, shops[0].ID.String(), mostExpensive.ShopID)
	assert.Equal(t, 10.00, mostExpensive.Price)
}

func TestCheapestWithoutPrices(t *testing.T) {
	service, _, g, _ := newTestService()

	_, err := service.GetCheapestPrice(context.Background(), g.ID.String())
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)

	_, err = service.GetMostExpensivePrice(context.Background(), g.ID.String())
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)
}

func TestDeleteByPairIsNoOpWhenAbsent(t *testing.T) {
	service, _, g, shops := newTestService()

	err := service.DeletePriceByGoodAndShop(context.Background(), g.ID.String(), shops[0].ID.String())
	assert.NoError(t, err)
}

func TestDeleteByPairRemovesRecord(t *testing.T) {
	service, repo, g, shops := newTestService()
	ctx := context.Background()

	_, err := service.SetPrice(ctx, domain.SetPriceRequest{
		GoodID: g.ID.String(),
		ShopID: shops[0].ID.String(),
		Price:  4.20,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeletePriceByGoodAndShop(ctx, g.ID.String(), shops[0].ID.String()))
	assert.Empty(t, repo.prices)
}

func TestDeleteByIDReportsNotFound(t *testing.T) {
	service, _, _, _ := newTestService()

	err := service.DeletePriceByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)
}

func TestGetPricesInRangeRejectsInvalidBounds(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.GetPricesInRange(context.Background(), 10, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
}
