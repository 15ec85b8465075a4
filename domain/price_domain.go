package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSetPrice    = "price set successfully"
	MessageSuccessGetPrices   = "prices retrieved successfully"
	MessageSuccessDeletePrice = "price deleted successfully"

	MessageFailedSetPrice    = "failed to set price"
	MessageFailedGetPrices   = "failed to retrieve prices"
	MessageFailedDeletePrice = "failed to delete price"

	ErrPriceNotFound      = errors.New("price not found")
	ErrGoodOrShopNotFound = errors.New("good or shop not found")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrInvalidPriceRange  = errors.New("invalid price range")
)

type (
	SetPriceRequest struct {
		GoodID   string  `json:"good_id" validate:"required,uuid"`
		ShopID   string  `json:"shop_id" validate:"required,uuid"`
		Price    float64 `json:"price" validate:"required,gt=0"`
		Currency string  `json:"currency" validate:"omitempty,len=3"`
	}

	PriceResponse struct {
		ID        string    `json:"id"`
		GoodID    string    `json:"good_id"`
		GoodName  string    `json:"good_name,omitempty"`
		ShopID    string    `json:"shop_id"`
		ShopName  string    `json:"shop_name,omitempty"`
		Price     float64   `json:"price"`
		Currency  string    `json:"currency"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
