package price

import (
	"context"

	"daily-shops/entities"

	"gorm.io/gorm"
)

type (
	PriceRepository interface {
		CreatePrice(ctx context.Context, price *entities.GoodsPrice) error
		UpdatePrice(ctx context.Context, price *entities.GoodsPrice) error
		GetPriceByID(ctx context.Context, id string) (*entities.GoodsPrice, error)
		GetPriceByGoodAndShop(ctx context.Context, goodID, shopID string) (*entities.GoodsPrice, error)
		GetPrices(ctx context.Context) ([]*entities.GoodsPrice, error)
		GetPricesByGood(ctx context.Context, goodID string) ([]*entities.GoodsPrice, error)
		GetPricesByShop(ctx context.Context, shopID string) ([]*entities.GoodsPrice, error)
		GetPricesByGoodOrdered(ctx context.Context, goodID string, ascending bool) ([]*entities.GoodsPrice, error)
		GetPricesInRange(ctx context.Context, minPrice, maxPrice float64) ([]*entities.GoodsPrice, error)
		GetPricesByCurrency(ctx context.Context, currency string) ([]*entities.GoodsPrice, error)
		SearchPricesByGoodName(ctx context.Context, goodName string) ([]*entities.GoodsPrice, error)
		SearchPricesByShopName(ctx context.Context, shopName string) ([]*entities.GoodsPrice, error)
		DeletePrice(ctx context.Context, id string) error
	}

	priceRepository struct {
		db *gorm.DB
	}
)

func NewPriceRepository(db *gorm.DB) PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Good").Preload("Shop")
}

func (r *priceRepository) CreatePrice(ctx context.Context, price *entities.GoodsPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *priceRepository) UpdatePrice(ctx context.Context, price *entities.GoodsPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

func (r *priceRepository) GetPriceByID(ctx context.Context, id string) (*entities.GoodsPrice, error) {
	var price entities.GoodsPrice
	if err := r.withRefs(ctx).Where("id = ?", id).First(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *priceRepository) GetPriceByGoodAndShop(ctx context.Context, goodID, shopID string) (*entities.GoodsPrice, error) {
	var price entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("good_id = ? AND shop_id = ?", goodID, shopID).
		First(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *priceRepository) GetPrices(ctx context.Context) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).Order("created_at asc").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) GetPricesByGood(ctx context.Context, goodID string) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("good_id = ?", goodID).
		Order("price asc, created_at asc, id asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) GetPricesByShop(ctx context.Context, shopID string) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("shop_id = ?", shopID).
		Order("price asc, created_at asc, id asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// GetPricesByGoodOrdered sorts by amount with a deterministic tie-break
// on insertion order, then id.
func (r *priceRepository) GetPricesByGoodOrdered(ctx context.Context, goodID string, ascending bool) ([]*entities.GoodsPrice, error) {
	order := "price desc, created_at asc, id asc"
	if ascending {
		order = "price asc, created_at asc, id asc"
	}

	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("good_id = ?", goodID).
		Order(order).
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) GetPricesInRange(ctx context.Context, minPrice, maxPrice float64) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("price BETWEEN ? AND ?", minPrice, maxPrice).
		Order("price asc, created_at asc, id asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) GetPricesByCurrency(ctx context.Context, currency string) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Where("currency = ?", currency).
		Order("created_at asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) SearchPricesByGoodName(ctx context.Context, goodName string) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Joins("JOIN goods ON goods.id = goods_prices.good_id").
		Where("goods.name ILIKE ?", "%"+goodName+"%").
		Order("goods_prices.created_at asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) SearchPricesByShopName(ctx context.Context, shopName string) ([]*entities.GoodsPrice, error) {
	var prices []*entities.GoodsPrice
	if err := r.withRefs(ctx).
		Joins("JOIN shops ON shops.id = goods_prices.shop_id").
		Where("shops.name ILIKE ?", "%"+shopName+"%").
		Order("goods_prices.created_at asc").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *priceRepository) DeletePrice(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GoodsPrice{}).Error
}
