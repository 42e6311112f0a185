package ds

import (
	"time"

	"gorm.io/gorm"
)

// Commodity — товар каталога. Счётчики Number/PresaleNumber/SalesVolume
// меняются только внутри транзакций (см. ledger) и не бывают отрицательными.
type Commodity struct {
	ID            int            `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"not null;index"`
	Colour        string         `json:"colour" gorm:"not null;index"`
	Size          string         `json:"size" gorm:"not null;index"`
	Brand         string         `json:"brand" gorm:"not null;index"`
	Number        int            `json:"number" gorm:"not null;default:0"`                            // физический остаток на складе
	PresaleNumber int            `json:"presaleNumber" gorm:"column:presale_number;not null;default:0"` // зарезервировано неподтверждёнными заказами
	SalesVolume   int            `json:"salesVolume" gorm:"column:sales_volume;not null;default:0"`     // накопленные продажи
	Price         float64        `json:"price" gorm:"not null"`
	PurchasePrice float64        `json:"purchasePrice,omitempty" gorm:"column:purchase_price;not null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Commodity) TableName() string { return "commodities" }
