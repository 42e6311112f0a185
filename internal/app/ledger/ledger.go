package ledger

import (
	"errors"

	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// Ledger — атомарные операции над счётчиками товара (остаток, предзаказ,
// продажи). Каждый метод читает текущие значения строки товара на переданном
// транзакционном подключении непосредственно перед изменением; счётчики
// никогда не кэшируются между операциями и не уходят ниже нуля.
type Ledger struct{}

// NewLedger - создание леджера
func NewLedger() *Ledger {
	return &Ledger{}
}

// load - чтение строки товара внутри транзакции (исключая удалённые)
func (l *Ledger) load(tx *gorm.DB, commodityID int) (ds.Commodity, error) {
	var commodity ds.Commodity
	err := tx.Where("id = ?", commodityID).First(&commodity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Commodity{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.Commodity{}, err
	}
	return commodity, nil
}

// ReservePresale - резервирование qty единиц под неподтверждённый клиентский
// заказ. Верхней границы нет: резерв может превышать физический остаток,
// достаточность остатка проверяется только при подтверждении.
func (l *Ledger) ReservePresale(tx *gorm.DB, commodityID, qty int) error {
	commodity, err := l.load(tx, commodityID)
	if err != nil {
		return err
	}

	return tx.Model(&ds.Commodity{}).Where("id = ?", commodityID).
		Update("presale_number", commodity.PresaleNumber+qty).Error
}

// ReleasePresale - возврат резерва при удалении неподтверждённого заказа.
// Значение ограничивается нулём снизу; если товар успели удалить — тихо
// ничего не делаем (уборка по возможности).
func (l *Ledger) ReleasePresale(tx *gorm.DB, commodityID, qty int) error {
	commodity, err := l.load(tx, commodityID)
	if errors.Is(err, ds.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	presale := commodity.PresaleNumber - qty
	if presale < 0 {
		presale = 0
	}

	return tx.Model(&ds.Commodity{}).Where("id = ?", commodityID).
		Update("presale_number", presale).Error
}

// ConfirmCustomerSale - списание qty единиц при подтверждении клиентского
// заказа: остаток уменьшается, резерв снимается (с нижней границей 0),
// продажи растут. Недостаточный остаток — ошибка, транзакция откатывается.
func (l *Ledger) ConfirmCustomerSale(tx *gorm.DB, commodityID, qty int) error {
	commodity, err := l.load(tx, commodityID)
	if err != nil {
		return err
	}

	if commodity.Number < qty {
		return &ds.InsufficientStockError{
			CommodityID: commodity.ID,
			Name:        commodity.Name,
			Stock:       commodity.Number,
			Requested:   qty,
		}
	}

	presale := commodity.PresaleNumber - qty
	if presale < 0 {
		presale = 0
	}

	return tx.Model(&ds.Commodity{}).Where("id = ?", commodityID).
		Updates(map[string]interface{}{
			"number":         commodity.Number - qty,
			"presale_number": presale,
			"sales_volume":   commodity.SalesVolume + qty,
		}).Error
}

// ConfirmPurchaseReceipt - приход qty единиц при подтверждении заказа
// поставщику.
func (l *Ledger) ConfirmPurchaseReceipt(tx *gorm.DB, commodityID, qty int) error {
	commodity, err := l.load(tx, commodityID)
	if err != nil {
		return err
	}

	return tx.Model(&ds.Commodity{}).Where("id = ?", commodityID).
		Update("number", commodity.Number+qty).Error
}
