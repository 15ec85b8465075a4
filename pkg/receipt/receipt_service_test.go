package receipt

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"daily-shops/domain"
	"daily-shops/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReceiptRepository struct {
	receipts []*entities.Receipt
}

func (r *fakeReceiptRepository) CreateReceipt(_ context.Context, receipt *entities.Receipt) error {
	copied := *receipt
	r.receipts = append(r.receipts, &copied)
	return nil
}

func (r *fakeReceiptRepository) GetReceiptByID(_ context.Context, id string) (*entities.Receipt, error) {
	for _, receipt := range r.receipts {
		if receipt.ID.String() == id {
			copied := *receipt
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReceiptRepository) GetReceipts(_ context.Context) ([]*entities.Receipt, error) {
	return r.receipts, nil
}

func (r *fakeReceiptRepository) SearchReceiptsByText(_ context.Context, text string) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, receipt := range r.receipts {
		if strings.Contains(receipt.OriginalText, text) || strings.Contains(receipt.ProcessedText, text) {
			out = append(out, receipt)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepository) SearchReceiptsByFileName(_ context.Context, fileName string) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, receipt := range r.receipts {
		if strings.Contains(receipt.FileName, fileName) {
			out = append(out, receipt)
		}
	}
	return out, nil
}

func (r *fakeReceiptRepository) GetReceiptsAfter(_ context.Context, _ time.Time) ([]*entities.Receipt, error) {
	return r.receipts, nil
}

func (r *fakeReceiptRepository) GetReceiptsBetween(_ context.Context, _, _ time.Time) ([]*entities.Receipt, error) {
	return r.receipts, nil
}

func (r *fakeReceiptRepository) UpdateReceipt(_ context.Context, receipt *entities.Receipt) error {
	for i, existing := range r.receipts {
		if existing.ID == receipt.ID {
			copied := *receipt
			r.receipts[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeReceiptRepository) DeleteReceipt(_ context.Context, id string) error {
	for i, receipt := range r.receipts {
		if receipt.ID.String() == id {
			r.receipts = append(r.receipts[:i], r.receipts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeEngine struct {
	available bool
	text      string
	err       error
}

func (e *fakeEngine) Recognize(_ context.Context, _ []byte) (string, error) {
	return e.text, e.err
}

func (e *fakeEngine) IsAvailable() bool {
	return e.available
}

type fakeStorage struct {
	stored map[string][]byte
	err    error
}

func (s *fakeStorage) UploadFile(_ context.Context, fileName string, data []byte, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.stored == nil {
		s.stored = map[string][]byte{}
	}
	s.stored[fileName] = data
	return "uploads/receipts/" + fileName, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, fileName string) error {
	delete(s.stored, fileName)
	return nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessReceiptRejectsEmptyFile(t *testing.T) {
	repo := &fakeReceiptRepository{}
	service := NewReceiptService(repo, &fakeEngine{available: true}, &fakeStorage{})

	_, err := service.ProcessReceipt(context.Background(), "receipt.png", "image/png", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyFile)
	assert.Empty(t, repo.receipts)
}

func TestProcessReceiptRejectsNonImage(t *testing.T) {
	repo := &fakeReceiptRepository{}
	uploadStorage := &fakeStorage{}
	service := NewReceiptService(repo, &fakeEngine{available: true}, uploadStorage)

	_, err := service.ProcessReceipt(context.Background(), "notes.txt", "text/plain", []byte("TOTAL 5.00"))
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, repo.receipts)
	assert.Empty(t, uploadStorage.stored)
}

func TestProcessReceiptRejectsUndecodableImage(t *testing.T) {
	repo := &fakeReceiptRepository{}
	service := NewReceiptService(repo, &fakeEngine{available: true}, &fakeStorage{})

	_, err := service.ProcessReceipt(context.Background(), "broken.png", "image/png", []byte("not a png"))
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, repo.receipts)
}

func TestProcessReceiptWhenEngineUnavailable(t *testing.T) {
	repo := &fakeReceiptRepository{}
	uploadStorage := &fakeStorage{}
	service := NewReceiptService(repo, &fakeEngine{available: false}, uploadStorage)

	_, err := service.ProcessReceipt(context.Background(), "receipt.png", "image/png", pngBytes(t))
	assert.ErrorIs(t, err, domain.ErrOcrUnavailable)
	assert.Empty(t, repo.receipts)
	assert.Empty(t, uploadStorage.stored)
}

func TestProcessReceiptStoresBothTexts(t *testing.T) {
	repo := &fakeReceiptRepository{}
	engine := &fakeEngine{available: true, text: "  MILK   2.50\r\n\r\nBREAD  1.20  "}
	uploadStorage := &fakeStorage{}
	service := NewReceiptService(repo, engine, uploadStorage)

	res, err := service.ProcessReceipt(context.Background(), "receipt.png", "image/png", pngBytes(t))
	require.NoError(t, err)

	assert.Equal(t, "receipt.png", res.FileName)
	assert.Equal(t, "MILK   2.50\r\n\r\nBREAD  1.20", res.OriginalText)
	assert.Equal(t, "MILK 2.50 BREAD 1.20", res.ProcessedText)
	assert.NotEmpty(t, res.ImageURL)
	assert.Len(t, repo.receipts, 1)
	assert.Len(t, uploadStorage.stored, 1)
}

func TestProcessReceiptRecognitionFailure(t *testing.T) {
	repo := &fakeReceiptRepository{}
	engine := &fakeEngine{available: true, err: errors.New("tesseract crashed")}
	service := NewReceiptService(repo, engine, &fakeStorage{})

	_, err := service.ProcessReceipt(context.Background(), "receipt.png", "image/png", pngBytes(t))
	assert.ErrorIs(t, err, domain.ErrOcrProcessingFailed)
	assert.Empty(t, repo.receipts)
}

func TestUpdateReceiptNotFound(t *testing.T) {
	service := NewReceiptService(&fakeReceiptRepository{}, &fakeEngine{available: true}, &fakeStorage{})

	_, err := service.UpdateReceipt(context.Background(), uuid.NewString(), domain.UpdateReceiptRequest{ProcessedText: "x"})
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestDeleteReceiptNotFound(t *testing.T) {
	service := NewReceiptService(&fakeReceiptRepository{}, &fakeEngine{available: true}, &fakeStorage{})

	err := service.DeleteReceipt(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}

func TestOcrStatus(t *testing.T) {
	available := NewReceiptService(&fakeReceiptRepository{}, &fakeEngine{available: true}, &fakeStorage{})
	assert.True(t, available.OcrStatus().Available)

	unavailable := NewReceiptService(&fakeReceiptRepository{}, &fakeEngine{available: false}, &fakeStorage{})
	assert.False(t, unavailable.OcrStatus().Available)
}
