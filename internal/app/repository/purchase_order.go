package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// Транзакционные операции заказов поставщику — зеркало клиентских.

// CreatePurchaseOrderTx - вставка заказа
func (r *Repository) CreatePurchaseOrderTx(tx *gorm.DB, order *ds.PurchaseOrder) error {
	return tx.Create(order).Error
}

// CreatePurchaseOrderItemTx - вставка строки заказа
func (r *Repository) CreatePurchaseOrderItemTx(tx *gorm.DB, item *ds.PurchaseOrderItem) error {
	return tx.Create(item).Error
}

// GetPurchaseOrderTx - получение заказа внутри транзакции
func (r *Repository) GetPurchaseOrderTx(tx *gorm.DB, id int) (ds.PurchaseOrder, error) {
	var order ds.PurchaseOrder
	err := tx.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.PurchaseOrder{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.PurchaseOrder{}, err
	}
	return order, nil
}

// GetPurchaseOrderItemsTx - строки заказа (исключая удалённые)
func (r *Repository) GetPurchaseOrderItemsTx(tx *gorm.DB, orderID int) ([]ds.PurchaseOrderItem, error) {
	var items []ds.PurchaseOrderItem
	err := tx.Where("purchase_order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdatePurchaseOrderTx - частичное обновление заказа
func (r *Repository) UpdatePurchaseOrderTx(tx *gorm.DB, id int, fields map[string]interface{}) error {
	return tx.Model(&ds.PurchaseOrder{}).Where("id = ?", id).Updates(fields).Error
}

// DeletePurchaseOrderItemTx - мягкое удаление строки заказа
func (r *Repository) DeletePurchaseOrderItemTx(tx *gorm.DB, itemID int) error {
	return tx.Where("id = ?", itemID).Delete(&ds.PurchaseOrderItem{}).Error
}

// DeletePurchaseOrderTx - мягкое удаление заказа
func (r *Repository) DeletePurchaseOrderTx(tx *gorm.DB, id int) error {
	return tx.Where("id = ?", id).Delete(&ds.PurchaseOrder{}).Error
}

// GetPurchaseOrders - постраничный список заказов с товарами и оператором
func (r *Repository) GetPurchaseOrders(page, limit int) ([]ds.PurchaseOrder, int64, error) {
	var orders []ds.PurchaseOrder

	var total int64
	if err := r.db.Model(&ds.PurchaseOrder{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Preload("Goods.Commodity").Preload("OperatorUser").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}
