package shop

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

type fakeShopRepository struct {
	shops []*entities.Shop
}

func (r *fakeShopRepository) AddShop(_ context.Context, shop *entities.Shop) error {
	copied := *shop
	r.shops = append(r.shops, &copied)
	return nil
}

func (r *fakeShopRepository) GetShopByID(_ context.Context, id string) (*entities.Shop, error) {
	for _, shop := range r.shops {
		if shop.ID.String() == id {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepository) GetShops(_ context.Context) ([]*entities.Shop, error) {
	return r.shops, nil
}

func (r *fakeShopRepository) SearchShopsByName(_ context.Context, name string) ([]*entities.Shop, error) {
	var out []*entities.Shop
	for _, shop := range r.shops {
		if strings.Contains(strings.ToLower(shop.Name), strings.ToLower(name)) {
			out = append(out, shop)
		}
	}
	return out, nil
}

func (r *fakeShopRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, shop := range r.shops {
		if shop.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShopRepository) UpdateShop(_ context.Context, shop *entities.Shop) error {
	for i, existing := range r.shops {
		if existing.ID == shop.ID {
			copied := *shop
			r.shops[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeShopRepository) DeleteShop(_ context.Context, id string) error {
	for i, shop := range r.shops {
		if shop.ID.String() == id {
			r.shops = append(r.shops[:i], r.shops[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestAddShopTrimsName(t *testing.T) {
	repo := &fakeShopRepository{}
	service := NewShopService(repo)

	res, err := service.AddShop(context.Background(), domain.AddShopRequest{Name: "  Corner Market  "})
	require.NoError(t, err)
	assert.Equal(t, "Corner Market", res.Name)
	assert.Len(t, repo.shops, 1)
}

func TestAddShopRejectsEmptyName(t *testing.T) {
	service := NewShopService(&fakeShopRepository{})

	_, err := service.AddShop(context.Background(), domain.AddShopRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyShopName)
}

func TestAddShopRejectsDuplicateName(t *testing.T) {
	repo := &fakeShopRepository{}
	service := NewShopService(repo)

	_, err := service.AddShop(context.Background(), domain.AddShopRequest{Name: "Corner Market"})
	require.NoError(t, err)

	_, err = service.AddShop(context.Background(), domain.AddShopRequest{Name: "Corner Market"})
	assert.ErrorIs(t, err, domain.ErrShopAlreadyExists)
	assert.Len(t, repo.shops, 1)
}

func TestGetShopByIDNotFound(t *testing.T) {
	service := NewShopService(&fakeShopRepository{})

	_, err := service.GetShopByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestSearchShops(t *testing.T) {
	repo := &fakeShopRepository{}
	service := NewShopService(repo)
	ctx := context.Background()

	for _, name := range []string{"Corner Market", "Super Market", "Bakery"} {
		_, err := service.AddShop(ctx, domain.AddShopRequest{Name: name})
		require.NoError(t, err)
	}

	found, err := service.SearchShops(ctx, " market ")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestUpdateShop(t *testing.T) {
	repo := &fakeShopRepository{}
	service := NewShopService(repo)
	ctx := context.Background()

	created, err := service.AddShop(ctx, domain.AddShopRequest{Name: "Corner Market"})
	require.NoError(t, err)

	updated, err := service.UpdateShop(ctx, created.ID, domain.UpdateShopRequest{Name: "Corner Store"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Corner Store", updated.Name)

	_, err = service.UpdateShop(ctx, uuid.NewString(), domain.UpdateShopRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}

func TestDeleteShopNotFound(t *testing.T) {
	service := NewShopService(&fakeShopRepository{})

	err := service.DeleteShop(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
