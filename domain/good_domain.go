package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddGood    = "good added successfully"
	MessageSuccessGetGoods   = "goods retrieved successfully"
	MessageSuccessUpdateGood = "good updated successfully"
	MessageSuccessDeleteGood = "good deleted successfully"

	MessageFailedAddGood    = "failed to add good"
	MessageFailedGetGoods   = "failed to retrieve goods"
	MessageFailedUpdateGood = "failed to update good"
	MessageFailedDeleteGood = "failed to delete good"

	ErrGoodNotFound      = errors.New("good not found")
	ErrGoodAlreadyExists = errors.New("good with this name already exists")
	ErrEmptyGoodName     = errors.New("good name must not be empty")
)

type (
	AddGoodRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateGoodRequest struct {
		Name string `json:"name" validate:"required"`
	}

	GoodResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
