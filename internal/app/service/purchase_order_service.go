package service

import (
	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/ledger"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
)

// PurchaseOrderService — машина состояний заказа поставщику. Упрощённое
// зеркало клиентского заказа: создание и удаление не трогают леджер
// (открытый заказ поставщику ничего не резервирует), приход на склад
// происходит только при подтверждении.
type PurchaseOrderService struct {
	repo   *repository.Repository
	ledger *ledger.Ledger
}

// NewPurchaseOrderService - создание сервиса заказов поставщику
func NewPurchaseOrderService(repo *repository.Repository, l *ledger.Ledger) *PurchaseOrderService {
	return &PurchaseOrderService{repo: repo, ledger: l}
}

// CreatePurchaseOrderRequest - запрос на создание заказа поставщику
type CreatePurchaseOrderRequest struct {
	Amount  float64          `json:"amount" binding:"required,gt=0"`
	Freight float64          `json:"freight" binding:"gte=0"`
	Remarks string           `json:"remarks"`
	Goods   []OrderGoodsItem `json:"goods" binding:"required,min=1,dive"`
}

// Create - создание заказа: проверяем существование каждого товара и
// вставляем заказ со строками. Складские счётчики не меняются.
func (s *PurchaseOrderService) Create(req CreatePurchaseOrderRequest, operatorID string) (ds.PurchaseOrder, error) {
	var order ds.PurchaseOrder

	err := s.repo.WithTransaction(func(tx *gorm.DB) error {
		// Существование товаров перепроверяется в той же транзакции,
		// что и вставка — защита от гонки с параллельным удалением.
		for _, item := range req.Goods {
			var commodity ds.Commodity
			if err := tx.Where("id = ?", item.ID).First(&commodity).Error; err != nil {
				return ds.ErrNotFound
			}
		}

		order = ds.PurchaseOrder{
			Operator: operatorID,
			Amount:   req.Amount,
			Freight:  req.Freight,
			Remarks:  req.Remarks,
			State:    ds.OrderStateOpen,
		}
		if err := s.repo.CreatePurchaseOrderTx(tx, &order); err != nil {
			return err
		}

		for _, item := range req.Goods {
			row := ds.PurchaseOrderItem{
				PurchaseOrderID: order.ID,
				GoodsID:         item.ID,
				Number:          item.Number,
			}
			if err := s.repo.CreatePurchaseOrderItemTx(tx, &row); err != nil {
				return err
			}
			order.Goods = append(order.Goods, row)
		}

		return nil
	})
	if err != nil {
		return ds.PurchaseOrder{}, err
	}

	return order, nil
}

// Confirm - подтверждение заказа создателем: приход по каждой строке,
// затем состояние confirmed и фрахт.
func (s *PurchaseOrderService) Confirm(orderID int, freight float64, callerID string) (ds.PurchaseOrder, error) {
	var order ds.PurchaseOrder

	err := s.repo.WithTransaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.repo.GetPurchaseOrderTx(tx, orderID)
		if err != nil {
			return err
		}

		if order.State == ds.OrderStateConfirmed {
			return ds.ErrInvalidState
		}
		if order.Operator != callerID {
			return ds.ErrForbidden
		}

		items, err := s.repo.GetPurchaseOrderItemsTx(tx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := s.ledger.ConfirmPurchaseReceipt(tx, item.GoodsID, item.Number); err != nil {
				return err
			}
		}

		if err := s.repo.UpdatePurchaseOrderTx(tx, orderID, map[string]interface{}{
			"state":   ds.OrderStateConfirmed,
			"freight": freight,
		}); err != nil {
			return err
		}

		order.State = ds.OrderStateConfirmed
		order.Freight = freight
		order.Goods = items
		return nil
	})
	if err != nil {
		return ds.PurchaseOrder{}, err
	}

	return order, nil
}

// Delete - удаление неподтверждённого заказа создателем. Леджер намеренно
// не трогаем: создание ничего не резервировало.
func (s *PurchaseOrderService) Delete(orderID int, callerID string) error {
	return s.repo.WithTransaction(func(tx *gorm.DB) error {
		order, err := s.repo.GetPurchaseOrderTx(tx, orderID)
		if err != nil {
			return err
		}

		if order.State == ds.OrderStateConfirmed {
			return ds.ErrInvalidState
		}
		if order.Operator != callerID {
			return ds.ErrForbidden
		}

		items, err := s.repo.GetPurchaseOrderItemsTx(tx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := s.repo.DeletePurchaseOrderItemTx(tx, item.ID); err != nil {
				return err
			}
		}

		return s.repo.DeletePurchaseOrderTx(tx, orderID)
	})
}

// List - постраничный список заказов
func (s *PurchaseOrderService) List(page, limit int) ([]ds.PurchaseOrder, int64, error) {
	return s.repo.GetPurchaseOrders(page, limit)
}
