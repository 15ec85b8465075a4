package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUploadReceipt = "receipt processed successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"
	MessageSuccessUpdateReceipt = "receipt updated successfully"
	MessageSuccessDeleteReceipt = "receipt deleted successfully"
	MessageOcrAvailable         = "OCR service is available"
	MessageOcrUnavailable       = "OCR service is not available"

	MessageFailedUploadReceipt = "failed to process receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"
	MessageFailedUpdateReceipt = "failed to update receipt"
	MessageFailedDeleteReceipt = "failed to delete receipt"

	ErrReceiptNotFound     = errors.New("receipt not found")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrInvalidImageFormat  = errors.New("invalid image format")
	ErrOcrUnavailable      = errors.New("OCR engine is not available")
	ErrOcrProcessingFailed = errors.New("OCR processing failed")
	ErrInvalidDateFormat   = errors.New("invalid date format")
)

type (
	UpdateReceiptRequest struct {
		ProcessedText string `json:"processed_text" validate:"required"`
	}

	ReceiptResponse struct {
		ID            string    `json:"id"`
		OriginalText  string    `json:"original_text"`
		ProcessedText string    `json:"processed_text"`
		ImageURL      string    `json:"image_url,omitempty"`
		FileName      string    `json:"file_name"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}

	OcrStatusResponse struct {
		Available bool   `json:"available"`
		Message   string `json:"message"`
	}
)
