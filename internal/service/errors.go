package service

import "errors"

// Ошибки корзины и оформления заказа
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// Ошибки доступа к дашборду
var (
	ErrInvalidPasscode = errors.New("invalid passcode")
)
