package good

import (
	"context"
	"strings"
	"testing"

	"daily-shops/domain"
	"daily-shops/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGoodRepository struct {
	goods []*entities.Good
}

func (r *fakeGoodRepository) AddGood(_ context.Context, good *entities.Good) error {
	copied := *good
	r.goods = append(r.goods, &copied)
	return nil
}

func (r *fakeGoodRepository) GetGoodByID(_ context.Context, id string) (*entities.Good, error) {
	for _, good := range r.goods {
		if good.ID.String() == id {
			copied := *good
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGoodRepository) GetGoods(_ context.Context) ([]*entities.Good, error) {
	return r.goods, nil
}

func (r *fakeGoodRepository) SearchGoodsByName(_ context.Context, name string) ([]*entities.Good, error) {
	var out []*entities.Good
	for _, good := range r.goods {
		if strings.Contains(strings.ToLower(good.Name), strings.ToLower(name)) {
			out = append(out, good)
		}
	}
	return out, nil
}

func (r *fakeGoodRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, good := range r.goods {
		if good.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGoodRepository) UpdateGood(_ context.Context, good *entities.Good) error {
	for i, existing := range r.goods {
		if existing.ID == good.ID {
			copied := *good
			r.goods[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGoodRepository) DeleteGood(_ context.Context, id string) error {
	for i, good := range r.goods {
		if good.ID.String() == id {
			r.goods = append(r.goods[:i], r.goods[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestAddGoodTrimsName(t *testing.T) {
	repo := &fakeGoodRepository{}
	service := NewGoodService(repo)

	res, err := service.AddGood(context.Background(), domain.AddGoodRequest{Name: " Smartphone "})
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", res.Name)
	assert.Len(t, repo.goods, 1)
}

func TestAddGoodRejectsEmptyName(t *testing.T) {
	service := NewGoodService(&fakeGoodRepository{})

	_, err := service.AddGood(context.Background(), domain.AddGoodRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyGoodName)
}

func TestAddGoodRejectsDuplicateName(t *testing.T) {
	repo := &fakeGoodRepository{}
	service := NewGoodService(repo)

	_, err := service.AddGood(context.Background(), domain.AddGoodRequest{Name: "Smartphone"})
	require.NoError(t, err)

	_, err = service.AddGood(context.Background(), domain.AddGoodRequest{Name: "Smartphone"})
	assert.ErrorIs(t, err, domain.ErrGoodAlreadyExists)
	assert.Len(t, repo.goods, 1)
}

func TestGetGoodByIDNotFound(t *testing.T) {
	service := NewGoodService(&fakeGoodRepository{})

	_, err := service.GetGoodByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)
}

func TestUpdateGoodNotFound(t *testing.T) {
	service := NewGoodService(&fakeGoodRepository{})

	_, err := service.UpdateGood(context.Background(), uuid.NewString(), domain.UpdateGoodRequest{Name: "Laptop"})
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)
}

func TestDeleteGoodNotFound(t *testing.T) {
	service := NewGoodService(&fakeGoodRepository{})

	err := service.DeleteGood(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrGoodNotFound)
}
