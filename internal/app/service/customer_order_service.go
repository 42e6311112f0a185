package service

import (
	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/ledger"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
)

// CustomerOrderService — машина состояний клиентского заказа:
// open --confirm--> confirmed, open --delete--> deleted; confirmed и deleted
// терминальны. Каждая операция выполняется в одной транзакции вместе со
// всеми изменениями леджера.
type CustomerOrderService struct {
	repo   *repository.Repository
	ledger *ledger.Ledger
}

// NewCustomerOrderService - создание сервиса клиентских заказов
func NewCustomerOrderService(repo *repository.Repository, l *ledger.Ledger) *CustomerOrderService {
	return &CustomerOrderService{repo: repo, ledger: l}
}

// OrderGoodsItem - позиция заказа в запросе
type OrderGoodsItem struct {
	ID     int `json:"id" binding:"required,gt=0"`
	Number int `json:"number" binding:"required,gt=0"`
}

// CreateCustomerOrderRequest - запрос на создание клиентского заказа
type CreateCustomerOrderRequest struct {
	Name            string           `json:"name" binding:"required"`
	Tel             string           `json:"tel" binding:"required"`
	DeliveryAddress string           `json:"deliveryAddress" binding:"required"`
	DeliveryTime    string           `json:"deliveryTime" binding:"required"`
	Amount          float64          `json:"amount" binding:"required,gt=0"`
	Deposit         float64          `json:"deposit" binding:"gte=0"`
	Remarks         string           `json:"remarks"`
	Goods           []OrderGoodsItem `json:"goods" binding:"required,min=1,dive"`
}

// Create - создание заказа: резервируем предзаказ по каждой позиции и
// вставляем заказ со строками. Отсутствие любого товара откатывает всё —
// частичный резерв не переживает ошибку.
func (s *CustomerOrderService) Create(req CreateCustomerOrderRequest, operatorID string) (ds.CustomerOrder, error) {
	var order ds.CustomerOrder

	err := s.repo.WithTransaction(func(tx *gorm.DB) error {
		for _, item := range req.Goods {
			if err := s.ledger.ReservePresale(tx, item.ID, item.Number); err != nil {
				return err
			}
		}

		order = ds.CustomerOrder{
			Operator:        operatorID,
			CustomerName:    req.Name,
			CustomerTel:     req.Tel,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryTime:    req.DeliveryTime,
			Amount:          req.Amount,
			Deposit:         req.Deposit,
			Remarks:         req.Remarks,
			State:           ds.OrderStateOpen,
			Freight:         0, // фрахт назначается при подтверждении
		}
		if err := s.repo.CreateCustomerOrderTx(tx, &order); err != nil {
			return err
		}

		for _, item := range req.Goods {
			row := ds.CustomerOrderItem{
				CustomerOrderID: order.ID,
				GoodsID:         item.ID,
				Number:          item.Number,
			}
			if err := s.repo.CreateCustomerOrderItemTx(tx, &row); err != nil {
				return err
			}
			order.Goods = append(order.Goods, row)
		}

		return nil
	})
	if err != nil {
		return ds.CustomerOrder{}, err
	}

	return order, nil
}

// Confirm - подтверждение заказа создателем: по каждой строке списываем
// остаток через леджер, затем переводим заказ в confirmed и проставляем
// фрахт. Нехватка остатка по любой строке откатывает подтверждение целиком.
func (s *CustomerOrderService) Confirm(orderID int, freight float64, callerID string) (ds.CustomerOrder, error) {
	var order ds.CustomerOrder

	err := s.repo.WithTransaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.repo.GetCustomerOrderTx(tx, orderID)
		if err != nil {
			return err
		}

		if order.State == ds.OrderStateConfirmed {
			return ds.ErrInvalidState
		}
		if order.Operator != callerID {
			return ds.ErrForbidden
		}

		items, err := s.repo.GetCustomerOrderItemsTx(tx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := s.ledger.ConfirmCustomerSale(tx, item.GoodsID, item.Number); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateCustomerOrderTx(tx, orderID, map[string]interface{}{
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
		return ds.CustomerOrder{}, err
	}

	return order, nil
}

// Delete - удаление неподтверждённого заказа создателем: резерв по каждой
// строке возвращается (с нижней границей 0), строки и заказ мягко удаляются.
func (s *CustomerOrderService) Delete(orderID int, callerID string) error {
	return s.repo.WithTransaction(func(tx *gorm.DB) error {
		order, err := s.repo.GetCustomerOrderTx(tx, orderID)
		if err != nil {
			return err
		}

		if order.State == ds.OrderStateConfirmed {
			return ds.ErrInvalidState
		}
		if order.Operator != callerID {
			return ds.ErrForbidden
		}

		items, err := s.repo.GetCustomerOrderItemsTx(tx, orderID)
		if err != nil {
			return err
		}

		for _, item := range items {
			if err := s.ledger.ReleasePresale(tx, item.GoodsID, item.Number); err != nil {
				return err
			}
			if err := s.repo.DeleteCustomerOrderItemTx(tx, item.ID); err != nil {
				return err
			}
		}

		return s.repo.DeleteCustomerOrderTx(tx, orderID)
	})
}

// List - постраничный список заказов
func (s *CustomerOrderService) List(page, limit int) ([]ds.CustomerOrder, int64, error) {
	return s.repo.GetCustomerOrders(page, limit)
}
