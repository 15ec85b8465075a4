package handlers

import (
	"errors"

	"daily-shops/domain"
	"daily-shops/internal/api/presenters"
	"daily-shops/pkg/shop"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShopHandler interface {
		AddShop(c *fiber.Ctx) error
		GetShops(c *fiber.Ctx) error
		GetShopByID(c *fiber.Ctx) error
		SearchShops(c *fiber.Ctx) error
		UpdateShop(c *fiber.Ctx) error
		DeleteShop(c *fiber.Ctx) error
	}

	shopHandler struct {
		shopService shop.ShopService
		validator   *validator.Validate
	}
)

func NewShopHandler(shopService shop.ShopService, validator *validator.Validate) ShopHandler {
	return &shopHandler{
		shopService: shopService,
		validator:   validator,
	}
}

func (h *shopHandler) AddShop(c *fiber.Ctx) error {
	req := new(domain.AddShopRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShop, err)
	}

	res, err := h.shopService.AddShop(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShop, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShop)
}

func (h *shopHandler) GetShops(c *fiber.Ctx) error {
	res, err := h.shopService.GetShops(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShops, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShops)
}

func (h *shopHandler) GetShopByID(c *fiber.Ctx) error {
	res, err := h.shopService.GetShopByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetShops, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShops, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShops)
}

func (h *shopHandler) SearchShops(c *fiber.Ctx) error {
	res, err := h.shopService.SearchShops(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetShops, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShops)
}

func (h *shopHandler) UpdateShop(c *fiber.Ctx) error {
	req := new(domain.UpdateShopRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShop, err)
	}

	res, err := h.shopService.UpdateShop(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateShop, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShop, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShop)
}

func (h *shopHandler) DeleteShop(c *fiber.Ctx) error {
	if err := h.shopService.DeleteShop(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteShop, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteShop, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShop)
}
