package handlers

import (
	"errors"
	"strconv"

	"daily-shops/domain"
	"daily-shops/internal/api/presenters"
	"daily-shops/pkg/price"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PriceHandler interface {
		SetPrice(c *fiber.Ctx) error
		GetPrices(c *fiber.Ctx) error
		GetPriceByID(c *fiber.Ctx) error
		GetPriceByGoodAndShop(c *fiber.Ctx) error
		GetPricesByGood(c *fiber.Ctx) error
		GetPricesByShop(c *fiber.Ctx) error
		GetCheapestPrice(c *fiber.Ctx) error
		GetMostExpensivePrice(c *fiber.Ctx) error
		GetPricesInRange(c *fiber.Ctx) error
		GetPricesByCurrency(c *fiber.Ctx) error
		SearchPricesByGoodName(c *fiber.Ctx) error
		SearchPricesByShopName(c *fiber.Ctx) error
		DeletePriceByID(c *fiber.Ctx) error
		DeletePriceByGoodAndShop(c *fiber.Ctx) error
	}

	priceHandler struct {
		priceService price.PriceService
		validator    *validator.Validate
	}
)

func NewPriceHandler(priceService price.PriceService, validator *validator.Validate) PriceHandler {
	return &priceHandler{
		priceService: priceService,
		validator:    validator,
	}
}

func (h *priceHandler) SetPrice(c *fiber.Ctx) error {
	req := new(domain.SetPriceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPrice, err)
	}

	res, err := h.priceService.SetPrice(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPrice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSetPrice)
}

func (h *priceHandler) GetPrices(c *fiber.Ctx) error {
	res, err := h.priceService.GetPrices(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPriceByID(c *fiber.Ctx) error {
	res, err := h.priceService.GetPriceByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPrices, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPriceByGoodAndShop(c *fiber.Ctx) error {
	res, err := h.priceService.GetPriceByGoodAndShop(c.Context(), c.Params("goodId"), c.Params("shopId"))
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPrices, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPricesByGood(c *fiber.Ctx) error {
	res, err := h.priceService.GetPricesByGood(c.Context(), c.Params("goodId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPricesByShop(c *fiber.Ctx) error {
	res, err := h.priceService.GetPricesByShop(c.Context(), c.Params("shopId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetCheapestPrice(c *fiber.Ctx) error {
	res, err := h.priceService.GetCheapestPrice(c.Context(), c.Params("goodId"))
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPrices, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetMostExpensivePrice(c *fiber.Ctx) error {
	res, err := h.priceService.GetMostExpensivePrice(c.Context(), c.Params("goodId"))
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPrices, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPricesInRange(c *fiber.Ctx) error {
	minPrice, err := strconv.ParseFloat(c.Query("minPrice", "0"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrices, domain.ErrInvalidPriceRange)
	}

	maxPrice, err := strconv.ParseFloat(c.Query("maxPrice", "0"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrices, domain.ErrInvalidPriceRange)
	}

	res, err := h.priceService.GetPricesInRange(c.Context(), minPrice, maxPrice)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPriceRange) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPrices, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) GetPricesByCurrency(c *fiber.Ctx) error {
	res, err := h.priceService.GetPricesByCurrency(c.Context(), c.Params("currency"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) SearchPricesByGoodName(c *fiber.Ctx) error {
	res, err := h.priceService.SearchPricesByGoodName(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) SearchPricesByShopName(c *fiber.Ctx) error {
	res, err := h.priceService.SearchPricesByShopName(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPrices, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPrices)
}

func (h *priceHandler) DeletePriceByID(c *fiber.Ctx) error {
	if err := h.priceService.DeletePriceByID(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeletePrice, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePrice, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePrice)
}

// Deleting a pair that has no price succeeds; the pair-delete path is a
// no-op on absence, unlike the id-delete path above.
func (h *priceHandler) DeletePriceByGoodAndShop(c *fiber.Ctx) error {
	if err := h.priceService.DeletePriceByGoodAndShop(c.Context(), c.Params("goodId"), c.Params("shopId")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeletePrice, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePrice)
}
