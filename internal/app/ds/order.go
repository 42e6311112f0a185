package ds

import (
	"time"

	"gorm.io/gorm"
)

// Статусы заказов. Переход только open -> confirmed, confirmed — терминальный.
const (
	OrderStateOpen      = "open"
	OrderStateConfirmed = "confirmed"
)

// CustomerOrder — клиентский заказ. Operator — создатель заказа; только он
// может подтвердить или удалить заказ.
type CustomerOrder struct {
	ID              int                 `json:"id" gorm:"primaryKey"`
	Operator        string              `json:"operator" gorm:"not null;index"`
	CustomerName    string              `json:"customerName" gorm:"column:customer_name;not null;index"`
	CustomerTel     string              `json:"customerTel" gorm:"column:customer_tel;not null;index"`
	DeliveryAddress string              `json:"deliveryAddress" gorm:"column:delivery_address;not null"`
	DeliveryTime    string              `json:"deliveryTime" gorm:"column:delivery_time;not null"`
	Amount          float64             `json:"amount" gorm:"not null"`
	Deposit         float64             `json:"deposit" gorm:"not null"`
	Remarks         string              `json:"remarks"`
	State           string              `json:"state" gorm:"not null;default:open;index"`
	Freight         float64             `json:"freight" gorm:"not null;default:0"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt      `json:"-" gorm:"index"`
	Goods           []CustomerOrderItem `json:"goods,omitempty" gorm:"foreignKey:CustomerOrderID"`
	OperatorUser    *User               `json:"-" gorm:"foreignKey:Operator;references:ID"`
}

func (CustomerOrder) TableName() string { return "customer_orders" }

// CustomerOrderItem — строка клиентского заказа: (заказ, товар) уникальна,
// количество фиксируется при создании заказа.
type CustomerOrderItem struct {
	ID              int            `json:"id" gorm:"primaryKey"`
	CustomerOrderID int            `json:"customerOrderId" gorm:"column:customer_order_id;not null;uniqueIndex:customer_goods_unique"`
	GoodsID         int            `json:"goodsId" gorm:"column:goods_id;not null;uniqueIndex:customer_goods_unique"`
	Number          int            `json:"number" gorm:"not null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	Commodity       *Commodity     `json:"-" gorm:"foreignKey:GoodsID;references:ID"`
}

func (CustomerOrderItem) TableName() string { return "customer_goods" }

// PurchaseOrder — заказ поставщику. Структурно параллелен клиентскому,
// но без данных покупателя и без резервирования на складе.
type PurchaseOrder struct {
	ID           int                 `json:"id" gorm:"primaryKey"`
	Operator     string              `json:"operator" gorm:"not null;index"`
	Remarks      string              `json:"remarks"`
	Amount       float64             `json:"amount" gorm:"not null"`
	Freight      float64             `json:"freight" gorm:"not null;default:0"`
	State        string              `json:"state" gorm:"not null;default:open;index"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt      `json:"-" gorm:"index"`
	Goods        []PurchaseOrderItem `json:"goods,omitempty" gorm:"foreignKey:PurchaseOrderID"`
	OperatorUser *User               `json:"-" gorm:"foreignKey:Operator;references:ID"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderItem — строка заказа поставщику.
type PurchaseOrderItem struct {
	ID              int            `json:"id" gorm:"primaryKey"`
	PurchaseOrderID int            `json:"purchaseOrderId" gorm:"column:purchase_order_id;not null;uniqueIndex:purchase_goods_unique"`
	GoodsID         int            `json:"goodsId" gorm:"column:goods_id;not null;uniqueIndex:purchase_goods_unique"`
	Number          int            `json:"number" gorm:"not null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	Commodity       *Commodity     `json:"-" gorm:"foreignKey:GoodsID;references:ID"`
}

func (PurchaseOrderItem) TableName() string { return "purchase_goods" }
