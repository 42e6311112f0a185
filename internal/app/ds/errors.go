package ds

import (
	"errors"
	"fmt"
)

// Доменные ошибки. Обработчики сопоставляют их с HTTP статусами,
// сервисы возвращают их наружу без изменений — любая из них откатывает
// объемлющую транзакцию целиком.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid order state")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError — нехватка остатка при подтверждении клиентского
// заказа. Несёт данные для пользовательского сообщения.
type InsufficientStockError struct {
	CommodityID int
	Name        string
	Stock       int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("commodity %q: insufficient stock, have %d, need %d", e.Name, e.Stock, e.Requested)
}

// Unwrap - позволяет errors.Is(err, ErrInsufficientStock)
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
