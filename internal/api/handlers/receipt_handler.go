package handlers

import (
	"errors"
	"io"
	"time"

	"daily-shops/domain"
	"daily-shops/internal/api/presenters"
	"daily-shops/pkg/receipt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		UploadReceipt(c *fiber.Ctx) error
		OcrStatus(c *fiber.Ctx) error
		GetReceipts(c *fiber.Ctx) error
		GetReceiptByID(c *fiber.Ctx) error
		SearchReceipts(c *fiber.Ctx) error
		SearchReceiptsByFileName(c *fiber.Ctx) error
		GetReceiptsAfter(c *fiber.Ctx) error
		GetReceiptsBetween(c *fiber.Ctx) error
		UpdateReceipt(c *fiber.Ctx) error
		DeleteReceipt(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) UploadReceipt(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, domain.ErrEmptyFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.receiptService.ProcessReceipt(
		c.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyFile), errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
		case errors.Is(err, domain.ErrOcrUnavailable):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedUploadReceipt, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadReceipt, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadReceipt)
}

func (h *receiptHandler) OcrStatus(c *fiber.Ctx) error {
	status := h.receiptService.OcrStatus()
	if !status.Available {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, status.Message, domain.ErrOcrUnavailable)
	}
	return presenters.SuccessResponse(c, status, fiber.StatusOK, status.Message)
}

func (h *receiptHandler) GetReceipts(c *fiber.Ctx) error {
	res, err := h.receiptService.GetReceipts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptByID(c *fiber.Ctx) error {
	res, err := h.receiptService.GetReceiptByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReceipts, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) SearchReceipts(c *fiber.Ctx) error {
	res, err := h.receiptService.SearchReceiptsByText(c.Context(), c.Query("text"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) SearchReceiptsByFileName(c *fiber.Ctx) error {
	res, err := h.receiptService.SearchReceiptsByFileName(c.Context(), c.Query("fileName"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptsAfter(c *fiber.Ctx) error {
	date, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, domain.ErrInvalidDateFormat)
	}

	res, err := h.receiptService.GetReceiptsAfter(c.Context(), date)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) GetReceiptsBetween(c *fiber.Ctx) error {
	startDate, err := time.Parse(time.RFC3339, c.Query("startDate"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, domain.ErrInvalidDateFormat)
	}

	endDate, err := time.Parse(time.RFC3339, c.Query("endDate"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReceipts, domain.ErrInvalidDateFormat)
	}

	res, err := h.receiptService.GetReceiptsBetween(c.Context(), startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReceipts, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

func (h *receiptHandler) UpdateReceipt(c *fiber.Ctx) error {
	req := new(domain.UpdateReceiptRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReceipt, err)
	}

	res, err := h.receiptService.UpdateReceipt(c.Context(), c.Params("id"), *req)
	if err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateReceipt, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReceipt)
}

func (h *receiptHandler) DeleteReceipt(c *fiber.Ctx) error {
	if err := h.receiptService.DeleteReceipt(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrReceiptNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteReceipt, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteReceipt, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReceipt)
}
