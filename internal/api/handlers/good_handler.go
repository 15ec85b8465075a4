package handlers

import (
	"errors"

	"daily-shops/domain"
	"daily-shops/internal/api/presenters"
	"daily-shops/pkg/good"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GoodHandler interface {
		AddGood(c *fiber.Ctx) error
		GetGoods(c *fiber.Ctx) error
		GetGoodByID(c *fiber.Ctx) error
		SearchGoods(c *fiber.Ctx) error
		UpdateGood(c *fiber.Ctx) error
		DeleteGood(c *fiber.Ctx) error
	}

	goodHandler struct {
		goodService good.GoodService
		validator   *validator.Validate
	}
)

func NewGoodHandler(goodService good.GoodService, validator *validator.Validate) GoodHandler {
	return &goodHandler{
		goodService: goodService,
		validator:   validator,
	}
}

func (h *goodHandler) AddGood(c *fiber.Ctx) error {
	req := new(domain.AddGoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGood, err)
	}

	res, err := h.goodService.AddGood(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGood)
}

func (h *goodHandler) GetGoods(c *fiber.Ctx) error {
	res, err := h.goodService.GetGoods(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGoods, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoods)
}

func (h *goodHandler) GetGoodByID(c *fiber.Ctx) error {
	res, err := h.goodService.GetGoodByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetGoods, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGoods, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoods)
}

func (h *goodHandler) SearchGoods(c *fiber.Ctx) error {
	res, err := h.goodService.SearchGoods(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGoods, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGoods)
}

func (h *goodHandler) UpdateGood(c *fiber.Ctx) error {
	req := new(domain.UpdateGoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGood, err)
	}

	res, err := h.goodService.UpdateGood(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrGoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateGood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGood, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGood)
}

func (h *goodHandler) DeleteGood(c *fiber.Ctx) error {
	if err := h.goodService.DeleteGood(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrGoodNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteGood, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteGood, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGood)
}
