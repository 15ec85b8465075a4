package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
	"time"

	"daily-shops/domain"
	"daily-shops/entities"
	"daily-shops/internal/utils/storage"
	"daily-shops/pkg/ocr"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recognition is a slow synchronous call with no cancellation of its
// own, so each run gets a bounded deadline.
const recognizeTimeout = 60 * time.Second

type (
	ReceiptService interface {
		ProcessReceipt(ctx context.Context, fileName, contentType string, data []byte) (domain.ReceiptResponse, error)
		GetReceipts(ctx context.Context) ([]domain.ReceiptResponse, error)
		GetReceiptByID(ctx context.Context, id string) (domain.ReceiptResponse, error)
		SearchReceiptsByText(ctx context.Context, text string) ([]domain.ReceiptResponse, error)
		SearchReceiptsByFileName(ctx context.Context, fileName string) ([]domain.ReceiptResponse, error)
		GetReceiptsAfter(ctx context.Context, date time.Time) ([]domain.ReceiptResponse, error)
		GetReceiptsBetween(ctx context.Context, startDate, endDate time.Time) ([]domain.ReceiptResponse, error)
		UpdateReceipt(ctx context.Context, id string, req domain.UpdateReceiptRequest) (domain.ReceiptResponse, error)
		DeleteReceipt(ctx context.Context, id string) error
		OcrStatus() domain.OcrStatusResponse
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		engine            ocr.Engine
		storage           storage.Storage
	}
)

func NewReceiptService(
	receiptRepository ReceiptRepository,
	engine ocr.Engine,
	uploadStorage storage.Storage,
) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		engine:            engine,
		storage:           uploadStorage,
	}
}

// ProcessReceipt runs the full pipeline: validate the upload, persist
// the original image, recognize text, normalize it and store the
// resulting record. A failure at any step aborts the whole operation
// and no receipt is written.
func (s *receiptService) ProcessReceipt(ctx context.Context, fileName, contentType string, data []byte) (domain.ReceiptResponse, error) {
	if len(data) == 0 {
		return domain.ReceiptResponse{}, domain.ErrEmptyFile
	}
	if !storage.IsAllowedImage(contentType) {
		return domain.ReceiptResponse{}, domain.ErrInvalidImageFormat
	}
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return domain.ReceiptResponse{}, domain.ErrInvalidImageFormat
	}

	if !s.engine.IsAvailable() {
		return domain.ReceiptResponse{}, domain.ErrOcrUnavailable
	}

	storedName := uuid.New().String() + fileExtension(fileName)
	imageURL, err := s.storage.UploadFile(ctx, storedName, data, contentType)
	if err != nil {
		return domain.ReceiptResponse{}, fmt.Errorf("failed to store receipt image: %w", err)
	}

	recognizeCtx, cancel := context.WithTimeout(ctx, recognizeTimeout)
	defer cancel()

	originalText, err := s.engine.Recognize(recognizeCtx, data)
	if err != nil {
		log.Errorf("OCR recognition failed for %s: %v", fileName, err)
		return domain.ReceiptResponse{}, domain.ErrOcrProcessingFailed
	}
	originalText = strings.TrimSpace(originalText)
	processedText := ocr.CleanText(originalText)

	receipt := &entities.Receipt{
		ID:            uuid.New(),
		OriginalText:  originalText,
		ProcessedText: processedText,
		ImageURL:      imageURL,
		FileName:      fileName,
	}

	if err := s.receiptRepository.CreateReceipt(ctx, receipt); err != nil {
		return domain.ReceiptResponse{}, err
	}

	log.Infof("receipt %s processed from %s", receipt.ID, fileName)
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) GetReceipts(ctx context.Context) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceipts(ctx)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (s *receiptService) GetReceiptByID(ctx context.Context, id string) (domain.ReceiptResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) SearchReceiptsByText(ctx context.Context, text string) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.SearchReceiptsByText(ctx, strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (s *receiptService) SearchReceiptsByFileName(ctx context.Context, fileName string) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.SearchReceiptsByFileName(ctx, strings.TrimSpace(fileName))
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (s *receiptService) GetReceiptsAfter(ctx context.Context, date time.Time) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceiptsAfter(ctx, date)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (s *receiptService) GetReceiptsBetween(ctx context.Context, startDate, endDate time.Time) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceiptsBetween(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(receipts), nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, id string, req domain.UpdateReceiptRequest) (domain.ReceiptResponse, error) {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptResponse{}, domain.ErrReceiptNotFound
		}
		return domain.ReceiptResponse{}, err
	}

	receipt.ProcessedText = req.ProcessedText
	if err := s.receiptRepository.UpdateReceipt(ctx, receipt); err != nil {
		return domain.ReceiptResponse{}, err
	}
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	if _, err := s.receiptRepository.GetReceiptByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}
	return s.receiptRepository.DeleteReceipt(ctx, id)
}

func (s *receiptService) OcrStatus() domain.OcrStatusResponse {
	if s.engine.IsAvailable() {
		return domain.OcrStatusResponse{Available: true, Message: domain.MessageOcrAvailable}
	}
	return domain.OcrStatusResponse{Available: false, Message: domain.MessageOcrUnavailable}
}

func fileExtension(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return ".jpg"
	}
	return ext
}

func toReceiptResponse(receipt *entities.Receipt) domain.ReceiptResponse {
	return domain.ReceiptResponse{
		ID:            receipt.ID.String(),
		OriginalText:  receipt.OriginalText,
		ProcessedText: receipt.ProcessedText,
		ImageURL:      receipt.ImageURL,
		FileName:      receipt.FileName,
		CreatedAt:     receipt.CreatedAt,
		UpdatedAt:     receipt.UpdatedAt,
	}
}

func toReceiptResponses(receipts []*entities.Receipt) []domain.ReceiptResponse {
	response := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, receipt := range receipts {
		response = append(response, toReceiptResponse(receipt))
	}
	return response
}
