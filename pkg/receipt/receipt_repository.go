package receipt

import (
	"context"
	"time"

	"daily-shops/entities"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		GetReceipts(ctx context.Context) ([]*entities.Receipt, error)
		SearchReceiptsByText(ctx context.Context, text string) ([]*entities.Receipt, error)
		SearchReceiptsByFileName(ctx context.Context, fileName string) ([]*entities.Receipt, error)
		GetReceiptsAfter(ctx context.Context, date time.Time) ([]*entities.Receipt, error)
		GetReceiptsBetween(ctx context.Context, startDate, endDate time.Time) ([]*entities.Receipt, error)
		UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error
		DeleteReceipt(ctx context.Context, id string) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) GetReceipts(ctx context.Context) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) SearchReceiptsByText(ctx context.Context, text string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	pattern := "%" + text + "%"
	if err := r.db.WithContext(ctx).
		Where("original_text ILIKE ? OR processed_text ILIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) SearchReceiptsByFileName(ctx context.Context, fileName string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("file_name ILIKE ?", "%"+fileName+"%").
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetReceiptsAfter(ctx context.Context, date time.Time) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("created_at > ?", date).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetReceiptsBetween(ctx context.Context, startDate, endDate time.Time) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Order("created_at desc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) DeleteReceipt(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Receipt{}).Error
}
