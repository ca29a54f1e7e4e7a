package postgres

import "errors"

// Ошибки корзины
var (
	ErrCartItemNotFound = errors.New("cart item not found")
)

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
)
