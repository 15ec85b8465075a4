package shop

import (
	"context"

	"daily-shops/entities"

	"gorm.io/gorm"
)

type (
	ShopRepository interface {
		AddShop(ctx context.Context, shop *entities.Shop) error
		GetShopByID(ctx context.Context, id string) (*entities.Shop, error)
		GetShops(ctx context.Context) ([]*entities.Shop, error)
		SearchShopsByName(ctx context.Context, name string) ([]*entities.Shop, error)
		ExistsByName(ctx context.Context, name string) (bool, error)
		UpdateShop(ctx context.Context, shop *entities.Shop) error
		DeleteShop(ctx context.Context, id string) error
	}

	shopRepository struct {
		db *gorm.DB
	}
)

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) AddShop(ctx context.Context, shop *entities.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *shopRepository) GetShopByID(ctx context.Context, id string) (*entities.Shop, error) {
	var shop entities.Shop
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) GetShops(ctx context.Context) ([]*entities.Shop, error) {
	var shops []*entities.Shop
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopRepository) SearchShopsByName(ctx context.Context, name string) ([]*entities.Shop, error) {
	var shops []*entities.Shop
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("created_at asc").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Shop{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shopRepository) UpdateShop(ctx context.Context, shop *entities.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

func (r *shopRepository) DeleteShop(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Shop{}).Error
}
