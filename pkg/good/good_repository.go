package good

import (
	"context"

	"daily-shops/entities"

	"gorm.io/gorm"
)

type (
	GoodRepository interface {
		AddGood(ctx context.Context, good *entities.Good) error
		GetGoodByID(ctx context.Context, id string) (*entities.Good, error)
		GetGoods(ctx context.Context) ([]*entities.Good, error)
		SearchGoodsByName(ctx context.Context, name string) ([]*entities.Good, error)
		ExistsByName(ctx context.Context, name string) (bool, error)
		UpdateGood(ctx context.Context, good *entities.Good) error
		DeleteGood(ctx context.Context, id string) error
	}

	goodRepository struct {
		db *gorm.DB
	}
)

func NewGoodRepository(db *gorm.DB) GoodRepository {
	return &goodRepository{db: db}
}

func (r *goodRepository) AddGood(ctx context.Context, good *entities.Good) error {
	return r.db.WithContext(ctx).Create(good).Error
}

func (r *goodRepository) GetGoodByID(ctx context.Context, id string) (*entities.Good, error) {
	var good entities.Good
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&good).Error; err != nil {
		return nil, err
	}
	return &good, nil
}

func (r *goodRepository) GetGoods(ctx context.Context) ([]*entities.Good, error) {
	var goods []*entities.Good
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

func (r *goodRepository) SearchGoodsByName(ctx context.Context, name string) ([]*entities.Good, error) {
	var goods []*entities.Good
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("created_at asc").
		Find(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

func (r *goodRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Good{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *goodRepository) UpdateGood(ctx context.Context, good *entities.Good) error {
	return r.db.WithContext(ctx).Save(good).Error
}

func (r *goodRepository) DeleteGood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Good{}).Error
}
