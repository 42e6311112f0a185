package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// Транзакционные операции клиентских заказов. Все методы с суффиксом Tx
// работают на переданном транзакционном подключении: заказ, его строки и
// затронутые товары меняются в одной транзакции.

// CreateCustomerOrderTx - вставка заказа
func (r *Repository) CreateCustomerOrderTx(tx *gorm.DB, order *ds.CustomerOrder) error {
	return tx.Create(order).Error
}

// CreateCustomerOrderItemTx - вставка строки заказа
func (r *Repository) CreateCustomerOrderItemTx(tx *gorm.DB, item *ds.CustomerOrderItem) error {
	return tx.Create(item).Error
}

// GetCustomerOrderTx - получение заказа внутри транзакции
func (r *Repository) GetCustomerOrderTx(tx *gorm.DB, id int) (ds.CustomerOrder, error) {
	var order ds.CustomerOrder
	err := tx.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.CustomerOrder{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.CustomerOrder{}, err
	}
	return order, nil
}

// GetCustomerOrderItemsTx - строки заказа (исключая удалённые)
func (r *Repository) GetCustomerOrderItemsTx(tx *gorm.DB, orderID int) ([]ds.CustomerOrderItem, error) {
	var items []ds.CustomerOrderItem
	err := tx.Where("customer_order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdateCustomerOrderTx - частичное обновление заказа
func (r *Repository) UpdateCustomerOrderTx(tx *gorm.DB, id int, fields map[string]interface{}) error {
	return tx.Model(&ds.CustomerOrder{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCustomerOrderItemTx - мягкое удаление строки заказа
func (r *Repository) DeleteCustomerOrderItemTx(tx *gorm.DB, itemID int) error {
	return tx.Where("id = ?", itemID).Delete(&ds.CustomerOrderItem{}).Error
}

// DeleteCustomerOrderTx - мягкое удаление заказа
func (r *Repository) DeleteCustomerOrderTx(tx *gorm.DB, id int) error {
	return tx.Where("id = ?", id).Delete(&ds.CustomerOrder{}).Error
}

// GetCustomerOrders - постраничный список заказов с товарами и оператором
func (r *Repository) GetCustomerOrders(page, limit int) ([]ds.CustomerOrder, int64, error) {
	var orders []ds.CustomerOrder

	var total int64
	if err := r.db.Model(&ds.CustomerOrder{}).Count(&total).Error; err != nil {
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
