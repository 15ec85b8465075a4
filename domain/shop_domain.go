package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddShop    = "shop added successfully"
	MessageSuccessGetShops   = "shops retrieved successfully"
	MessageSuccessUpdateShop = "shop updated successfully"
	MessageSuccessDeleteShop = "shop deleted successfully"

	MessageFailedAddShop    = "failed to add shop"
	MessageFailedGetShops   = "failed to retrieve shops"
	MessageFailedUpdateShop = "failed to update shop"
	MessageFailedDeleteShop = "failed to delete shop"

	ErrShopNotFound      = errors.New("shop not found")
	ErrShopAlreadyExists = errors.New("shop with this name already exists")
	ErrEmptyShopName     = errors.New("shop name must not be empty")
)

type (
	AddShopRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateShopRequest struct {
		Name string `json:"name" validate:"required"`
	}

	ShopResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
