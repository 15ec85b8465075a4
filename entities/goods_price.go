package entities

import (
	"github.com/google/uuid"
)

// GoodsPrice references Good and Shop by id only; deleting either does
// not cascade here, so a price can outlive its referenced records.
type GoodsPrice struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GoodID   uuid.UUID `gorm:"index:idx_good_shop,unique" json:"good_id"`
	ShopID   uuid.UUID `gorm:"index:idx_good_shop,unique" json:"shop_id"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency"`

	Good *Good `gorm:"foreignKey:GoodID" json:"good,omitempty"`
	Shop *Shop `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Timestamp
}
